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

	"github.com/google/uuid"
	"github.com/l3montree-dev/postureguard/config"
	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/l3montree-dev/postureguard/dtos"
	"github.com/l3montree-dev/postureguard/utils"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newEngine() *Engine {
	return NewEngine(config.DefaultScoringProfile())
}

func vuln(severity dtos.Severity, status dtos.VulnStatus) models.Vulnerability {
	return models.Vulnerability{
		Model:        models.Model{ID: uuid.New()},
		Tenant:       models.DefaultTenant,
		Severity:     severity,
		Status:       status,
		DiscoveredAt: now.Add(-48 * time.Hour),
	}
}

func incident(severity dtos.Severity, status dtos.IncidentStatus) models.Incident {
	return models.Incident{
		Model:      models.Model{ID: uuid.New()},
		Tenant:     models.DefaultTenant,
		Severity:   severity,
		Status:     status,
		DetectedAt: now.Add(-24 * time.Hour),
	}
}

// resolvedIncident was detected resolutionTime before it was resolved, which was age before now.
func resolvedIncident(severity dtos.Severity, resolutionTime, age time.Duration) models.Incident {
	i := incident(severity, dtos.IncidentStatusResolved)
	resolvedAt := now.Add(-age)
	i.DetectedAt = resolvedAt.Add(-resolutionTime)
	i.ResolvedAt = utils.Ptr(resolvedAt)
	return i
}

func framework(statuses ...dtos.ControlStatus) models.ComplianceFramework {
	f := models.ComplianceFramework{
		Model:         models.Model{ID: uuid.New()},
		Tenant:        models.DefaultTenant,
		Name:          "ISO 27001",
		FrameworkType: dtos.FrameworkTypeISO27001,
	}
	for i, status := range statuses {
		f.Controls = append(f.Controls, models.ComplianceControl{
			Model:       models.Model{ID: uuid.New()},
			FrameworkID: f.ID,
			ControlID:   "A.5." + string(rune('1'+i)),
			Title:       "control",
			Status:      status,
		})
	}
	return f
}
