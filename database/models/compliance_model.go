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

	"github.com/google/uuid"
	"github.com/l3montree-dev/postureguard/dtos"
)

// ComplianceFramework owns its controls.
// There is no stored overall score: the score is always derived from the controls (see scoring.FrameworkScore).
type ComplianceFramework struct {
	Model
	Tenant         string              `json:"tenant" gorm:"type:text;not null;index;default:'default';uniqueIndex:idx_framework_tenant_name"`
	Name           string              `json:"name" gorm:"type:text;not null;uniqueIndex:idx_framework_tenant_name"`
	FrameworkType  dtos.FrameworkType  `json:"frameworkType" gorm:"type:text;not null"`
	Version        *string             `json:"version" gorm:"type:text"`
	Description    *string             `json:"description" gorm:"type:text"`
	LastAssessedAt *time.Time          `json:"lastAssessedAt"`
	Controls       []ComplianceControl `json:"controls" gorm:"foreignKey:FrameworkID;constraint:OnDelete:CASCADE"`
}

func (ComplianceFramework) TableName() string {
	return "compliance_frameworks"
}

type ComplianceControl struct {
	Model
	FrameworkID      uuid.UUID          `json:"frameworkId" gorm:"type:uuid;not null;index"`
	ControlID        string             `json:"controlId" gorm:"type:text;not null"` // e.g. "A.5.1.1" for ISO 27001
	Title            string             `json:"title" gorm:"type:text;not null"`
	Description      *string            `json:"description" gorm:"type:text"`
	Status           dtos.ControlStatus `json:"status" gorm:"type:text;not null;default:'not_assessed';index" validate:"oneof=compliant partially_compliant non_compliant not_assessed not_applicable"`
	Evidence         *string            `json:"evidence" gorm:"type:text"`
	RemediationNotes *string            `json:"remediationNotes" gorm:"type:text"`
}

func (ComplianceControl) TableName() string {
	return "compliance_controls"
}

type ControlCounts struct {
	Compliant          int
	PartiallyCompliant int
	NonCompliant       int
	NotAssessed        int
	NotApplicable      int
}

// Assessable is the denominator of the framework score.
func (c ControlCounts) Assessable() int {
	return c.Compliant + c.PartiallyCompliant + c.NonCompliant + c.NotAssessed
}

func (f ComplianceFramework) ControlCounts() ControlCounts {
	var c ControlCounts
	for _, control := range f.Controls {
		switch control.Status {
		case dtos.ControlStatusCompliant:
			c.Compliant++
		case dtos.ControlStatusPartiallyCompliant:
			c.PartiallyCompliant++
		case dtos.ControlStatusNonCompliant:
			c.NonCompliant++
		case dtos.ControlStatusNotApplicable:
			c.NotApplicable++
		default:
			c.NotAssessed++
		}
	}
	return c
}

// ComplianceAssessment is an append-only history entry of a framework score.
type ComplianceAssessment struct {
	Model
	FrameworkID          uuid.UUID `json:"frameworkId" gorm:"type:uuid;not null;index"`
	AssessedAt           time.Time `json:"assessedAt" gorm:"not null;index"`
	OverallScore         float64   `json:"overallScore" gorm:"not null"`
	CompliantControls    int       `json:"compliantControls" gorm:"not null;default:0"`
	NonCompliantControls int       `json:"nonCompliantControls" gorm:"not null;default:0"`
	TotalControls        int       `json:"totalControls" gorm:"not null;default:0"`
	AssessorName         *string   `json:"assessorName" gorm:"type:text"`
	Notes                *string   `json:"notes" gorm:"type:text"`
}

func (ComplianceAssessment) TableName() string {
	return "compliance_assessments"
}
