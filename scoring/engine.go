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
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/postureguard/config"
	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/l3montree-dev/postureguard/utils"
)

const maxScore = 100.0

// Penalty is one deduction from a sub-score. The penalties of a sub-score sum up to 100 - score.
type Penalty struct {
	RecordID uuid.UUID  `json:"recordId"`
	Kind     RecordKind `json:"kind"`
	Reason   string     `json:"reason"`
	Amount   float64    `json:"amount"`
}

type VulnScore struct {
	Score     float64
	Penalties []Penalty
}

type IncidentScore struct {
	Score     float64
	Penalties []Penalty
}

// Engine holds the scoring constants. All methods are pure.
type Engine struct {
	profile config.ScoringProfile
}

func NewEngine(profile config.ScoringProfile) *Engine {
	return &Engine{profile: profile}
}

// deduct subtracts amount but never drops below 0.
// It returns the new value and the amount which was actually deducted.
func deduct(current, amount float64) (float64, float64) {
	next := math.Max(0, current-amount)
	return next, current - next
}

func (e *Engine) ScoreVulnerabilities(at time.Time, vulns []models.Vulnerability) VulnScore {
	res := VulnScore{Score: maxScore}
	for _, vuln := range vulns {
		if !vuln.IsOpen() {
			continue
		}

		var applied float64
		res.Score, applied = deduct(res.Score, e.profile.SeverityPenalties.For(vuln.Severity))
		if applied > 0 {
			reason := fmt.Sprintf("open %s vulnerability", vuln.Severity)
			if cvss, ok := EffectiveCVSS(vuln); ok {
				reason = fmt.Sprintf("%s (cvss %.1f)", reason, cvss)
			}
			res.Penalties = append(res.Penalties, Penalty{RecordID: vuln.ID, Kind: RecordKindVulnerability, Reason: reason, Amount: applied})
		}

		if vuln.SLABreached(at) {
			res.Score, applied = deduct(res.Score, e.profile.SLABreachPenalty)
			if applied > 0 {
				res.Penalties = append(res.Penalties, Penalty{
					RecordID: vuln.ID,
					Kind:     RecordKindVulnerability,
					Reason:   fmt.Sprintf("sla deadline %s breached", vuln.SLADeadline.UTC().Format(time.RFC3339)),
					Amount:   applied,
				})
			}
		}
	}
	return res
}

// residualPenalty is the penalty of a resolved incident.
// It grows with the resolution time relative to the target of its severity (capped)
// and decays linearly to zero over the recency window after the resolution.
func (e *Engine) residualPenalty(at time.Time, incident models.Incident) float64 {
	resolutionMinutes, ok := incident.ResolutionMinutes()
	if !ok {
		return 0
	}
	resolvedAt, ok := incident.ResolvedOrClosedAt()
	if !ok {
		return 0
	}

	window := time.Duration(e.profile.IncidentRecencyDays) * 24 * time.Hour
	age := max(at.Sub(resolvedAt), 0)
	if age >= window {
		return 0
	}
	decay := 1 - float64(age)/float64(window)

	target := e.profile.IncidentTargetMinutes.For(incident.Severity)
	if target <= 0 {
		return 0
	}
	ratio := math.Min(resolutionMinutes/target, e.profile.IncidentRatioCap)

	return e.profile.SeverityPenalties.For(incident.Severity) * e.profile.IncidentResidualFactor * ratio * decay
}

func (e *Engine) ScoreIncidents(at time.Time, incidents []models.Incident) IncidentScore {
	res := IncidentScore{Score: maxScore}
	for _, incident := range incidents {
		var amount float64
		var reason string
		if incident.IsActive() {
			amount = e.profile.SeverityPenalties.For(incident.Severity)
			reason = fmt.Sprintf("%s %s incident", incident.Status, incident.Severity)
		} else {
			amount = e.residualPenalty(at, incident)
			minutes, _ := incident.ResolutionMinutes()
			reason = fmt.Sprintf("%s incident resolved after %.0f minutes", incident.Severity, minutes)
		}

		var applied float64
		res.Score, applied = deduct(res.Score, amount)
		if applied > 0 {
			res.Penalties = append(res.Penalties, Penalty{RecordID: incident.ID, Kind: RecordKindIncident, Reason: reason, Amount: applied})
		}
	}
	res.Score = utils.Clamp(res.Score, 0, maxScore)
	return res
}
