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
	"gorm.io/datatypes"
)

// TrendPoint is one day of the posture history of a tenant.
// (tenant, day) is the primary key, so appending the same day twice is an upsert.
type TrendPoint struct {
	Tenant             string         `json:"tenant" gorm:"primaryKey;type:text"`
	Day                time.Time      `json:"day" gorm:"primaryKey;type:date"`
	Value              float64        `json:"value" gorm:"not null"`
	RiskLevel          dtos.RiskLevel `json:"riskLevel" gorm:"type:text"`
	VulnerabilityScore float64        `json:"vulnerabilityScore"`
	IncidentScore      float64        `json:"incidentScore"`
	ComplianceScore    float64        `json:"complianceScore"`
	// provenance of the value: the penalties which were applied
	Breakdown datatypes.JSON `json:"breakdown" gorm:"type:jsonb"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func (TrendPoint) TableName() string {
	return "posture_trend_points"
}
