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

import "time"

type TrendPointDTO struct {
	// YYYY-MM-DD
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type PenaltyDTO struct {
	RecordID string  `json:"record_id"`
	Kind     string  `json:"kind"`
	Reason   string  `json:"reason"`
	Amount   float64 `json:"amount"`
}

type WeightsDTO struct {
	Vulnerability float64 `json:"vulnerability"`
	Incident      float64 `json:"incident"`
	Compliance    float64 `json:"compliance"`
}

type ScoreBreakdownDTO struct {
	VulnerabilityScore float64      `json:"vulnerability_score"`
	IncidentScore      float64      `json:"incident_score"`
	ComplianceScore    float64      `json:"compliance_score"`
	Weights            WeightsDTO   `json:"weights"`
	Penalties          []PenaltyDTO `json:"penalties"`
}

type SecurityPostureDTO struct {
	Tenant              string            `json:"tenant"`
	OverallScore        float64           `json:"overall_score"`
	RiskLevel           RiskLevel         `json:"risk_level"`
	CriticalAlerts      int               `json:"critical_alerts"`
	OpenVulnerabilities int               `json:"open_vulnerabilities"`
	ActiveIncidents     int               `json:"active_incidents"`
	ComplianceScore     float64           `json:"compliance_score"`
	TrendData           []TrendPointDTO   `json:"trend_data"`
	Breakdown           ScoreBreakdownDTO `json:"breakdown"`
	ComputedAt          time.Time         `json:"computed_at"`
}

type DashboardStatsDTO struct {
	Tenant                  string  `json:"tenant"`
	TotalVulnerabilities    int     `json:"total_vulnerabilities"`
	CriticalVulnerabilities int     `json:"critical_vulnerabilities"`
	OpenVulnerabilities     int     `json:"open_vulnerabilities"`
	OpenIncidents           int     `json:"open_incidents"`
	CriticalIncidents       int     `json:"critical_incidents"`
	ComplianceFrameworks    int     `json:"compliance_frameworks"`
	CompliantFrameworks     int     `json:"compliant_frameworks"`
	SecurityScore           float64 `json:"security_score"`
	ComplianceScore         float64 `json:"compliance_score"`
}

type ComplianceAssessmentDTO struct {
	ID                   string    `json:"id"`
	FrameworkID          string    `json:"framework_id"`
	AssessedAt           time.Time `json:"assessed_at"`
	OverallScore         float64   `json:"overall_score"`
	CompliantControls    int       `json:"compliant_controls"`
	NonCompliantControls int       `json:"non_compliant_controls"`
	TotalControls        int       `json:"total_controls"`
	AssessorName         *string   `json:"assessor_name,omitempty"`
	Notes                *string   `json:"notes,omitempty"`
}

type CreateComplianceAssessmentRequest struct {
	AssessorName *string `json:"assessor_name" validate:"omitempty,max=255"`
	Notes        *string `json:"notes"`
}
