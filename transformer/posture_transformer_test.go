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
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/postureguard/config"
	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/l3montree-dev/postureguard/dtos"
	"github.com/l3montree-dev/postureguard/scoring"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendToDTO(t *testing.T) {
	t.Run("should encode an empty series as an empty array", func(t *testing.T) {
		b, err := json.Marshal(TrendToDTO(nil))
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(b))
	})

	t.Run("should format the day as date in utc and keep the order", func(t *testing.T) {
		cet := time.FixedZone("CET", 60*60)
		points := []models.TrendPoint{
			{Day: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), Value: 70.5},
			{Day: time.Date(2026, 3, 15, 1, 0, 0, 0, cet), Value: 72},
		}

		assert.Equal(t, []dtos.TrendPointDTO{
			{Date: "2026-03-14", Value: 70.5},
			{Date: "2026-03-15", Value: 72},
		}, TrendToDTO(points))
	})
}

func TestPostureToDTO(t *testing.T) {
	vulnID := uuid.New()
	incidentID := uuid.New()
	computedAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	posture := shared.Posture{
		Result: scoring.Result{
			Tenant:       "acme",
			ComputedAt:   computedAt,
			OverallScore: 75.4,
			RiskLevel:    dtos.RiskLevelMedium,
			Vulnerabilities: scoring.VulnScore{
				Score:     80,
				Penalties: []scoring.Penalty{{RecordID: vulnID, Kind: scoring.RecordKindVulnerability, Reason: "open critical vulnerability", Amount: 20}},
			},
			Incidents: scoring.IncidentScore{
				Score:     90,
				Penalties: []scoring.Penalty{{RecordID: incidentID, Kind: scoring.RecordKindIncident, Reason: "active high incident", Amount: 10}},
			},
			Compliance: scoring.ComplianceScore{Score: 50, Mean: 50},
			Counts: scoring.Counts{
				CriticalAlerts:      1,
				OpenVulnerabilities: 1,
				ActiveIncidents:     1,
			},
		},
		Trend: []models.TrendPoint{{Day: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), Value: 75.4}},
	}

	dto := PostureToDTO(posture, config.DefaultScoringProfile().Weights)

	assert.Equal(t, "acme", dto.Tenant)
	assert.Equal(t, 75.4, dto.OverallScore)
	assert.Equal(t, dtos.RiskLevelMedium, dto.RiskLevel)
	assert.Equal(t, 1, dto.CriticalAlerts)
	assert.Equal(t, 1, dto.OpenVulnerabilities)
	assert.Equal(t, 1, dto.ActiveIncidents)
	assert.Equal(t, 50.0, dto.ComplianceScore)
	assert.Equal(t, computedAt, dto.ComputedAt)
	assert.Equal(t, []dtos.TrendPointDTO{{Date: "2026-03-15", Value: 75.4}}, dto.TrendData)

	assert.Equal(t, dtos.WeightsDTO{Vulnerability: 40, Incident: 35, Compliance: 25}, dto.Breakdown.Weights)
	assert.Equal(t, 80.0, dto.Breakdown.VulnerabilityScore)
	assert.Equal(t, 90.0, dto.Breakdown.IncidentScore)
	assert.Equal(t, 50.0, dto.Breakdown.ComplianceScore)
	assert.Equal(t, []dtos.PenaltyDTO{
		{RecordID: vulnID.String(), Kind: "vulnerability", Reason: "open critical vulnerability", Amount: 20},
		{RecordID: incidentID.String(), Kind: "incident", Reason: "active high incident", Amount: 10},
	}, dto.Breakdown.Penalties)
}

func TestPostureToDTOWithoutFrameworks(t *testing.T) {
	posture := shared.Posture{
		Result: scoring.Result{
			Tenant:          "acme",
			OverallScore:    100,
			RiskLevel:       dtos.RiskLevelLow,
			Vulnerabilities: scoring.VulnScore{Score: 100},
			Incidents:       scoring.IncidentScore{Score: 100},
			Compliance:      scoring.ComplianceScore{Score: 100, Mean: 0},
		},
	}

	dto := PostureToDTO(posture, config.DefaultScoringProfile().Weights)

	// the reported compliance score is the framework mean, the aggregator input stays in the breakdown
	assert.Equal(t, 0.0, dto.ComplianceScore)
	assert.Equal(t, 100.0, dto.Breakdown.ComplianceScore)
	assert.NotNil(t, dto.TrendData)
	assert.NotNil(t, dto.Breakdown.Penalties)
}

func TestDashboardStatsToDTO(t *testing.T) {
	result := scoring.Result{
		Tenant:       "acme",
		OverallScore: 81.3,
		Compliance:   scoring.ComplianceScore{Score: 81.3, Mean: 81.3},
		Counts: scoring.Counts{
			TotalVulnerabilities:    10,
			CriticalVulnerabilities: 3,
			OpenVulnerabilities:     3,
			ActiveIncidents:         2,
			CriticalIncidents:       1,
			Frameworks:              2,
			CompliantFrameworks:     1,
		},
	}

	assert.Equal(t, dtos.DashboardStatsDTO{
		Tenant:                  "acme",
		TotalVulnerabilities:    10,
		CriticalVulnerabilities: 3,
		OpenVulnerabilities:     3,
		OpenIncidents:           2,
		CriticalIncidents:       1,
		ComplianceFrameworks:    2,
		CompliantFrameworks:     1,
		SecurityScore:           81.3,
		ComplianceScore:         81.3,
	}, DashboardStatsToDTO(result))
}

func TestComplianceAssessmentToDTO(t *testing.T) {
	assessment := models.ComplianceAssessment{
		Model:                models.Model{ID: uuid.New()},
		FrameworkID:          uuid.New(),
		AssessedAt:           time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
		OverallScore:         62.5,
		CompliantControls:    2,
		NonCompliantControls: 1,
		TotalControls:        4,
		AssessorName:         shared.Ptr("alice"),
	}

	dto := ComplianceAssessmentToDTO(assessment)

	assert.Equal(t, assessment.ID.String(), dto.ID)
	assert.Equal(t, assessment.FrameworkID.String(), dto.FrameworkID)
	assert.Equal(t, 62.5, dto.OverallScore)
	assert.Equal(t, 4, dto.TotalControls)
	assert.Equal(t, "alice", *dto.AssessorName)
	assert.Nil(t, dto.Notes)
}
