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

package transformer

import (
	"time"

	"github.com/l3montree-dev/postureguard/config"
	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/l3montree-dev/postureguard/dtos"
	"github.com/l3montree-dev/postureguard/scoring"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/l3montree-dev/postureguard/utils"
)

func TrendPointToDTO(point models.TrendPoint) dtos.TrendPointDTO {
	return dtos.TrendPointDTO{
		Date:  point.Day.UTC().Format(time.DateOnly),
		Value: point.Value,
	}
}

// TrendToDTO never returns nil so the series is always encoded as a json array.
func TrendToDTO(points []models.TrendPoint) []dtos.TrendPointDTO {
	res := make([]dtos.TrendPointDTO, 0, len(points))
	for _, p := range points {
		res = append(res, TrendPointToDTO(p))
	}
	return res
}

func PenaltyToDTO(penalty scoring.Penalty) dtos.PenaltyDTO {
	return dtos.PenaltyDTO{
		RecordID: penalty.RecordID.String(),
		Kind:     string(penalty.Kind),
		Reason:   penalty.Reason,
		Amount:   penalty.Amount,
	}
}

func BreakdownToDTO(result scoring.Result, weights config.Weights) dtos.ScoreBreakdownDTO {
	return dtos.ScoreBreakdownDTO{
		VulnerabilityScore: result.Vulnerabilities.Score,
		IncidentScore:      result.Incidents.Score,
		ComplianceScore:    result.Compliance.Score,
		Weights: dtos.WeightsDTO{
			Vulnerability: weights.Vulnerability,
			Incident:      weights.Incident,
			Compliance:    weights.Compliance,
		},
		Penalties: utils.Map(result.Penalties(), PenaltyToDTO),
	}
}

// PostureToDTO reports the mean of the framework scores as compliance score.
// The aggregator input is part of the breakdown.
func PostureToDTO(posture shared.Posture, weights config.Weights) dtos.SecurityPostureDTO {
	return dtos.SecurityPostureDTO{
		Tenant:              posture.Tenant,
		OverallScore:        posture.OverallScore,
		RiskLevel:           posture.RiskLevel,
		CriticalAlerts:      posture.Counts.CriticalAlerts,
		OpenVulnerabilities: posture.Counts.OpenVulnerabilities,
		ActiveIncidents:     posture.Counts.ActiveIncidents,
		ComplianceScore:     posture.Compliance.Mean,
		TrendData:           TrendToDTO(posture.Trend),
		Breakdown:           BreakdownToDTO(posture.Result, weights),
		ComputedAt:          posture.ComputedAt,
	}
}

func DashboardStatsToDTO(result scoring.Result) dtos.DashboardStatsDTO {
	return dtos.DashboardStatsDTO{
		Tenant:                  result.Tenant,
		TotalVulnerabilities:    result.Counts.TotalVulnerabilities,
		CriticalVulnerabilities: result.Counts.CriticalVulnerabilities,
		OpenVulnerabilities:     result.Counts.OpenVulnerabilities,
		OpenIncidents:           result.Counts.ActiveIncidents,
		CriticalIncidents:       result.Counts.CriticalIncidents,
		ComplianceFrameworks:    result.Counts.Frameworks,
		CompliantFrameworks:     result.Counts.CompliantFrameworks,
		SecurityScore:           result.OverallScore,
		ComplianceScore:         result.Compliance.Mean,
	}
}

func ComplianceAssessmentToDTO(assessment models.ComplianceAssessment) dtos.ComplianceAssessmentDTO {
	return dtos.ComplianceAssessmentDTO{
		ID:                   assessment.ID.String(),
		FrameworkID:          assessment.FrameworkID.String(),
		AssessedAt:           assessment.AssessedAt,
		OverallScore:         assessment.OverallScore,
		CompliantControls:    assessment.CompliantControls,
		NonCompliantControls: assessment.NonCompliantControls,
		TotalControls:        assessment.TotalControls,
		AssessorName:         assessment.AssessorName,
		Notes:                assessment.Notes,
	}
}
