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

type Incident struct {
	Model
	Tenant                string              `json:"tenant" gorm:"type:text;not null;index;default:'default'"`
	Title                 string              `json:"title" gorm:"type:text"`
	IncidentType          dtos.IncidentType   `json:"incidentType" gorm:"type:text;not null;default:'other'"`
	Severity              dtos.Severity       `json:"severity" gorm:"type:text;not null;index" validate:"oneof=low medium high critical"`
	Status                dtos.IncidentStatus `json:"status" gorm:"type:text;not null;default:'detected';index" validate:"oneof=detected investigating contained resolved closed"`
	DetectedAt            time.Time           `json:"detectedAt" gorm:"not null"`
	ContainedAt           *time.Time          `json:"containedAt"`
	ResolvedAt            *time.Time          `json:"resolvedAt"`
	ResponseTimeMinutes   *int                `json:"responseTimeMinutes" validate:"omitempty,gte=0"`
	ResolutionTimeMinutes *int                `json:"resolutionTimeMinutes" validate:"omitempty,gte=0"`
}

func (Incident) TableName() string {
	return "incidents"
}

func (i Incident) IsResolved() bool {
	return i.Status == dtos.IncidentStatusResolved || i.Status == dtos.IncidentStatusClosed
}

func (i Incident) IsActive() bool {
	return !i.IsResolved()
}

// ResolutionMinutes prefers the supplied duration and falls back to resolvedAt - detectedAt.
func (i Incident) ResolutionMinutes() (float64, bool) {
	if i.ResolutionTimeMinutes != nil {
		return float64(*i.ResolutionTimeMinutes), true
	}
	if i.ResolvedAt != nil {
		return i.ResolvedAt.Sub(i.DetectedAt).Minutes(), true
	}
	return 0, false
}

// ResolvedOrClosedAt returns the point in time the incident stopped being active.
func (i Incident) ResolvedOrClosedAt() (time.Time, bool) {
	if i.ResolvedAt != nil {
		return *i.ResolvedAt, true
	}
	if m, ok := i.ResolutionMinutes(); ok {
		return i.DetectedAt.Add(time.Duration(m * float64(time.Minute))), true
	}
	return time.Time{}, false
}
