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

package models

import (
	"time"

	"github.com/l3montree-dev/postureguard/dtos"
)

type Vulnerability struct {
	Model
	Tenant       string          `json:"tenant" gorm:"type:text;not null;index;default:'default'"`
	Title        string          `json:"title" gorm:"type:text"`
	Severity     dtos.Severity   `json:"severity" gorm:"type:text;not null;index" validate:"oneof=low medium high critical"`
	Status       dtos.VulnStatus `json:"status" gorm:"type:text;not null;default:'open';index" validate:"oneof=open in_progress resolved"`
	CVSSScore    *float64        `json:"cvssScore" gorm:"column:cvss_score" validate:"omitempty,gte=0,lte=10"`
	CVSSVector   *string         `json:"cvssVector" gorm:"column:cvss_vector;type:text"`
	DiscoveredAt time.Time       `json:"discoveredAt" gorm:"not null"`
	SLADeadline  *time.Time      `json:"slaDeadline" gorm:"column:sla_deadline"`
	ResolvedAt   *time.Time      `json:"resolvedAt"`
}

func (Vulnerability) TableName() string {
	return "vulnerabilities"
}

// IsOpen reports whether the vulnerability still counts against the posture.
// in_progress is open.
func (v Vulnerability) IsOpen() bool {
	return v.Status != dtos.VulnStatusResolved
}

func (v Vulnerability) SLABreached(at time.Time) bool {
	return v.IsOpen() && v.SLADeadline != nil && v.SLADeadline.Before(at)
}
