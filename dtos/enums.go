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

package dtos

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type VulnStatus string

const (
	VulnStatusOpen       VulnStatus = "open"
	VulnStatusInProgress VulnStatus = "in_progress"
	VulnStatusResolved   VulnStatus = "resolved"
)

type IncidentStatus string

const (
	IncidentStatusDetected      IncidentStatus = "detected"
	IncidentStatusInvestigating IncidentStatus = "investigating"
	IncidentStatusContained     IncidentStatus = "contained"
	IncidentStatusResolved      IncidentStatus = "resolved"
	// closed is a post-mortem state. it counts as resolved everywhere.
	IncidentStatusClosed IncidentStatus = "closed"
)

type IncidentType string

const (
	IncidentTypeDataBreach         IncidentType = "data_breach"
	IncidentTypeMalware            IncidentType = "malware"
	IncidentTypePhishing           IncidentType = "phishing"
	IncidentTypeDDoS               IncidentType = "ddos"
	IncidentTypeUnauthorizedAccess IncidentType = "unauthorized_access"
	IncidentTypeInsiderThreat      IncidentType = "insider_threat"
	IncidentTypeOther              IncidentType = "other"
)

type ControlStatus string

const (
	ControlStatusCompliant          ControlStatus = "compliant"
	ControlStatusPartiallyCompliant ControlStatus = "partially_compliant"
	ControlStatusNonCompliant       ControlStatus = "non_compliant"
	ControlStatusNotAssessed        ControlStatus = "not_assessed"
	// not applicable controls are excluded from the framework score
	ControlStatusNotApplicable ControlStatus = "not_applicable"
)

type FrameworkType string

const (
	FrameworkTypeISO27001 FrameworkType = "iso_27001"
	FrameworkTypeNISTCSF  FrameworkType = "nist_csf"
	FrameworkTypeSOC2     FrameworkType = "soc_2"
	FrameworkTypeGDPR     FrameworkType = "gdpr"
	FrameworkTypeHIPAA    FrameworkType = "hipaa"
	FrameworkTypePCIDSS   FrameworkType = "pci_dss"
)

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)
