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

package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/postureguard/config"
	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/l3montree-dev/postureguard/database/repositories"
	"github.com/l3montree-dev/postureguard/dtos"
	"github.com/l3montree-dev/postureguard/scoring"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestTrendService(repository *repositories.MemoryTrendRepository) *TrendService {
	s := NewTrendService(repository, config.DefaultScoringProfile())
	s.now = func() time.Time { return now }
	return s
}

func vuln(severity dtos.Severity, status dtos.VulnStatus) models.Vulnerability {
	return models.Vulnerability{
		Model:        models.Model{ID: uuid.New()},
		Tenant:       "acme",
		Severity:     severity,
		Status:       status,
		DiscoveredAt: now.Add(-72 * time.Hour),
	}
}

func snapshotOf(vulns ...models.Vulnerability) scoring.Snapshot {
	return scoring.Snapshot{
		Tenant:          "acme",
		TakenAt:         now,
		Vulnerabilities: vulns,
	}
}

func framework(statuses ...dtos.ControlStatus) models.ComplianceFramework {
	f := models.ComplianceFramework{
		Model:         models.Model{ID: uuid.New()},
		Tenant:        "acme",
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
