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
	"time"

	"github.com/l3montree-dev/postureguard/dtos"
)

type Counts struct {
	// open vulnerabilities and active incidents with severity critical
	CriticalAlerts      int
	OpenVulnerabilities int
	ActiveIncidents     int

	TotalVulnerabilities    int
	CriticalVulnerabilities int
	CriticalIncidents       int
	Frameworks              int
	CompliantFrameworks     int
}

type Result struct {
	Tenant       string
	ComputedAt   time.Time
	OverallScore float64
	RiskLevel    dtos.RiskLevel

	Vulnerabilities VulnScore
	Incidents       IncidentScore
	Compliance      ComplianceScore
	Counts          Counts
}

func countSnapshot(s Snapshot) Counts {
	var c Counts
	c.TotalVulnerabilities = len(s.Vulnerabilities)
	for _, vuln := range s.Vulnerabilities {
		critical := vuln.Severity == dtos.SeverityCritical
		if critical {
			c.CriticalVulnerabilities++
		}
		if vuln.IsOpen() {
			c.OpenVulnerabilities++
			if critical {
				c.CriticalAlerts++
			}
		}
	}

	for _, incident := range s.Incidents {
		critical := incident.Severity == dtos.SeverityCritical
		if critical {
			c.CriticalIncidents++
		}
		if incident.IsActive() {
			c.ActiveIncidents++
			if critical {
				c.CriticalAlerts++
			}
		}
	}
	c.Frameworks = len(s.Frameworks)
	return c
}

// Score validates the snapshot and runs every scoring step on it.
func (e *Engine) Score(s Snapshot) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{
		Tenant:          s.Tenant,
		ComputedAt:      s.TakenAt,
		Vulnerabilities: e.ScoreVulnerabilities(s.TakenAt, s.Vulnerabilities),
		Incidents:       e.ScoreIncidents(s.TakenAt, s.Incidents),
		Compliance:      e.ScoreCompliance(s.Frameworks),
		Counts:          countSnapshot(s),
	}
	res.Counts.CompliantFrameworks = e.CompliantFrameworks(res.Compliance)
	res.OverallScore, res.RiskLevel = e.Aggregate(res.Vulnerabilities.Score, res.Incidents.Score, res.Compliance.Score)
	return res, nil
}

// Penalties returns the provenance of the overall score.
func (r Result) Penalties() []Penalty {
	penalties := make([]Penalty, 0, len(r.Vulnerabilities.Penalties)+len(r.Incidents.Penalties))
	penalties = append(penalties, r.Vulnerabilities.Penalties...)
	return append(penalties, r.Incidents.Penalties...)
}
