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
	"github.com/google/uuid"
	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/l3montree-dev/postureguard/utils"
)

type FrameworkResult struct {
	FrameworkID uuid.UUID            `json:"frameworkId"`
	Name        string               `json:"name"`
	Score       float64              `json:"score"`
	Counts      models.ControlCounts `json:"counts"`
}

type ComplianceScore struct {
	// Score is the aggregator input. Without frameworks there is no negative evidence, so it is 100.
	Score float64
	// Mean is the unweighted mean of all framework scores, 0 without frameworks.
	Mean       float64
	Frameworks []FrameworkResult
}

// FrameworkScore derives the score of a framework from its controls:
// compliant counts 1, partially compliant 0.5, everything else 0.
// Not applicable controls are not part of the denominator.
// A framework without assessable controls scores 0.
func FrameworkScore(framework models.ComplianceFramework) float64 {
	counts := framework.ControlCounts()
	total := counts.Assessable()
	if total == 0 {
		return 0
	}
	points := float64(counts.Compliant) + 0.5*float64(counts.PartiallyCompliant)
	return utils.RoundToOneDecimal(points / float64(total) * 100)
}

func (e *Engine) ScoreCompliance(frameworks []models.ComplianceFramework) ComplianceScore {
	if len(frameworks) == 0 {
		return ComplianceScore{Score: maxScore, Mean: 0}
	}

	res := ComplianceScore{
		Frameworks: make([]FrameworkResult, 0, len(frameworks)),
	}
	sum := 0.
	for _, framework := range frameworks {
		score := FrameworkScore(framework)
		sum += score
		res.Frameworks = append(res.Frameworks, FrameworkResult{
			FrameworkID: framework.ID,
			Name:        framework.Name,
			Score:       score,
			Counts:      framework.ControlCounts(),
		})
	}
	res.Mean = utils.RoundToOneDecimal(sum / float64(len(frameworks)))
	res.Score = res.Mean
	return res
}

// CompliantFrameworks counts the frameworks scoring at least the compliant threshold.
func (e *Engine) CompliantFrameworks(score ComplianceScore) int {
	return utils.Count(score.Frameworks, func(f FrameworkResult) bool {
		return f.Score >= e.profile.CompliantFrameworkThreshold
	})
}
