// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scoring

import (
	"github.com/l3montree-dev/postureguard/config"
	"github.com/l3montree-dev/postureguard/dtos"
	"github.com/l3montree-dev/postureguard/utils"
)

// RiskLevelFromScore maps an overall score to its band.
// Each threshold is the inclusive lower bound of its band, so a score exactly on a boundary lands in the safer band.
func RiskLevelFromScore(score float64, thresholds config.Thresholds) dtos.RiskLevel {
	switch {
	case score >= thresholds.Low:
		return dtos.RiskLevelLow
	case score >= thresholds.Medium:
		return dtos.RiskLevelMedium
	case score >= thresholds.High:
		return dtos.RiskLevelHigh
	default:
		return dtos.RiskLevelCritical
	}
}

// Aggregate combines the sub-scores (each in [0,100]) to the overall score rounded to one decimal.
func (e *Engine) Aggregate(vulnScore, incidentScore, complianceScore float64) (float64, dtos.RiskLevel) {
	w := e.profile.Weights
	weighted := (utils.Clamp(vulnScore, 0, maxScore)*w.Vulnerability +
		utils.Clamp(incidentScore, 0, maxScore)*w.Incident +
		utils.Clamp(complianceScore, 0, maxScore)*w.Compliance) / w.Sum()

	overall := utils.RoundToOneDecimal(utils.Clamp(weighted, 0, maxScore))
	return overall, RiskLevelFromScore(overall, e.profile.Thresholds)
}
