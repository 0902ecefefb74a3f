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

package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/postureguard/config"
	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/l3montree-dev/postureguard/dtos"
	"github.com/l3montree-dev/postureguard/mocks"
	"github.com/l3montree-dev/postureguard/scoring"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTenantContext(method, target string, body string) (shared.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)
	shared.SetTenant(ctx, "acme")
	return ctx, rec
}

func requireHTTPError(t *testing.T, err error, code int) *echo.HTTPError {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, code, he.Code)
	return he
}

func TestToHTTPError(t *testing.T) {
	recordID := uuid.New()
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation error", errors.Wrap(&scoring.ValidationError{Kind: scoring.RecordKindVulnerability, RecordID: recordID, Field: "cvssScore", Reason: "must be within [0,10]"}, "could not score"), http.StatusUnprocessableEntity},
		{"store unavailable", shared.WrapStoreError(errors.New("connection refused"), "could not read vulnerabilities"), http.StatusServiceUnavailable},
		{"deadline", errors.Wrap(context.DeadlineExceeded, "posture computation aborted"), http.StatusGatewayTimeout},
		{"canceled", context.Canceled, http.StatusServiceUnavailable},
		{"not found", errors.Wrap(shared.ErrNotFound, "framework"), http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			he := requireHTTPError(t, toHTTPError(tc.err, "could not compute"), tc.code)
			assert.Equal(t, tc.err, he.Internal)
		})
	}

	t.Run("should name the offending record", func(t *testing.T) {
		err := &scoring.ValidationError{Kind: scoring.RecordKindIncident, RecordID: recordID, Field: "resolvedAt", Reason: "must not be before detectedAt"}
		he := requireHTTPError(t, toHTTPError(err, "could not compute"), http.StatusUnprocessableEntity)

		message, ok := he.Message.(echo.Map)
		require.True(t, ok)
		assert.Equal(t, recordID.String(), message["recordId"])
		assert.Equal(t, "resolvedAt", message["field"])
		assert.Contains(t, message["message"], recordID.String())
	})
}

func TestPostureControllerGetPosture(t *testing.T) {
	profile := config.DefaultScoringProfile()

	t.Run("should return the posture with breakdown and trend", func(t *testing.T) {
		postureService := mocks.NewPostureService(t)
		postureService.On("GetSecurityPosture", mock.Anything, "acme").Return(shared.Posture{
			Result: scoring.Result{
				Tenant:          "acme",
				OverallScore:    92,
				RiskLevel:       dtos.RiskLevelLow,
				Vulnerabilities: scoring.VulnScore{Score: 80},
				Incidents:       scoring.IncidentScore{Score: 100},
				Compliance:      scoring.ComplianceScore{Score: 100},
			},
			Trend: []models.TrendPoint{{Tenant: "acme", Day: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), Value: 92}},
		}, nil)

		ctx, rec := newTenantContext(http.MethodGet, "/", "")
		require.NoError(t, NewPostureController(postureService, profile).GetPosture(ctx))

		assert.Equal(t, http.StatusOK, rec.Code)
		var dto dtos.SecurityPostureDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
		assert.Equal(t, 92.0, dto.OverallScore)
		assert.Equal(t, dtos.RiskLevelLow, dto.RiskLevel)
		assert.Equal(t, []dtos.TrendPointDTO{{Date: "2026-03-15", Value: 92}}, dto.TrendData)
		assert.Equal(t, 40.0, dto.Breakdown.Weights.Vulnerability)
	})

	t.Run("should map a store failure to 503", func(t *testing.T) {
		postureService := mocks.NewPostureService(t)
		postureService.On("GetSecurityPosture", mock.Anything, "acme").Return(shared.Posture{}, shared.WrapStoreError(errors.New("connection refused"), "could not read snapshot"))

		ctx, _ := newTenantContext(http.MethodGet, "/", "")
		requireHTTPError(t, NewPostureController(postureService, profile).GetPosture(ctx), http.StatusServiceUnavailable)
	})
}

func TestPostureControllerGetLastKnownPosture(t *testing.T) {
	profile := config.DefaultScoringProfile()

	t.Run("should return 404 before the first computation", func(t *testing.T) {
		postureService := mocks.NewPostureService(t)
		postureService.On("GetLastKnownPosture", "acme").Return(shared.Posture{}, false)

		ctx, _ := newTenantContext(http.MethodGet, "/", "")
		requireHTTPError(t, NewPostureController(postureService, profile).GetLastKnownPosture(ctx), http.StatusNotFound)
	})

	t.Run("should return the cached posture", func(t *testing.T) {
		postureService := mocks.NewPostureService(t)
		postureService.On("GetLastKnownPosture", "acme").Return(shared.Posture{Result: scoring.Result{Tenant: "acme", OverallScore: 55, RiskLevel: dtos.RiskLevelHigh}}, true)

		ctx, rec := newTenantContext(http.MethodGet, "/", "")
		require.NoError(t, NewPostureController(postureService, profile).GetLastKnownPosture(ctx))

		var dto dtos.SecurityPostureDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
		assert.Equal(t, 55.0, dto.OverallScore)
		assert.Equal(t, dtos.RiskLevelHigh, dto.RiskLevel)
	})
}

func TestPostureControllerGetStats(t *testing.T) {
	postureService := mocks.NewPostureService(t)
	postureService.On("GetDashboardStats", mock.Anything, "acme").Return(scoring.Result{
		Tenant:       "acme",
		OverallScore: 88.8,
		Compliance:   scoring.ComplianceScore{Score: 81.3, Mean: 81.3},
		Counts:       scoring.Counts{TotalVulnerabilities: 10, CriticalVulnerabilities: 3, Frameworks: 2, CompliantFrameworks: 1},
	}, nil)

	ctx, rec := newTenantContext(http.MethodGet, "/", "")
	require.NoError(t, NewPostureController(postureService, config.DefaultScoringProfile()).GetStats(ctx))

	var dto dtos.DashboardStatsDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, 10, dto.TotalVulnerabilities)
	assert.Equal(t, 3, dto.CriticalVulnerabilities)
	assert.Equal(t, 2, dto.ComplianceFrameworks)
	assert.Equal(t, 1, dto.CompliantFrameworks)
	assert.Equal(t, 81.3, dto.ComplianceScore)
	assert.Equal(t, 88.8, dto.SecurityScore)
}

func TestPostureControllerGetTrend(t *testing.T) {
	profile := config.DefaultScoringProfile()

	t.Run("should use the default window without days", func(t *testing.T) {
		postureService := mocks.NewPostureService(t)
		postureService.On("GetTrend", mock.Anything, "acme", 0).Return(nil, nil)

		ctx, rec := newTenantContext(http.MethodGet, "/", "")
		require.NoError(t, NewPostureController(postureService, profile).GetTrend(ctx))
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("should pass the requested window", func(t *testing.T) {
		postureService := mocks.NewPostureService(t)
		postureService.On("GetTrend", mock.Anything, "acme", 7).Return([]models.TrendPoint{
			{Day: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), Value: 60},
			{Day: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), Value: 61.5},
		}, nil)

		ctx, rec := newTenantContext(http.MethodGet, "/?days=7", "")
		require.NoError(t, NewPostureController(postureService, profile).GetTrend(ctx))
		assert.JSONEq(t, `[{"date":"2026-03-14","value":60},{"date":"2026-03-15","value":61.5}]`, rec.Body.String())
	})

	for _, days := range []string{"abc", "0", "-3"} {
		t.Run("should reject days="+days, func(t *testing.T) {
			postureService := mocks.NewPostureService(t)

			ctx, _ := newTenantContext(http.MethodGet, "/?days="+days, "")
			requireHTTPError(t, NewPostureController(postureService, profile).GetTrend(ctx), http.StatusBadRequest)
		})
	}
}

func TestComplianceController(t *testing.T) {
	frameworkID := uuid.New()

	t.Run("should reject an invalid framework id", func(t *testing.T) {
		service := mocks.NewComplianceAssessmentService(t)

		ctx, _ := newTenantContext(http.MethodPost, "/", "")
		ctx.SetParamNames("frameworkID")
		ctx.SetParamValues("not-a-uuid")

		requireHTTPError(t, NewComplianceController(service).Assess(ctx), http.StatusBadRequest)
	})

	t.Run("should create an assessment", func(t *testing.T) {
		service := mocks.NewComplianceAssessmentService(t)
		service.On("AssessFramework", mock.Anything, "acme", frameworkID, mock.MatchedBy(func(name *string) bool {
			return name != nil && *name == "alice"
		}), (*string)(nil)).Return(models.ComplianceAssessment{
			Model:         models.Model{ID: uuid.New()},
			FrameworkID:   frameworkID,
			OverallScore:  62.5,
			TotalControls: 4,
		}, nil)

		ctx, rec := newTenantContext(http.MethodPost, "/", `{"assessor_name":"alice"}`)
		ctx.SetParamNames("frameworkID")
		ctx.SetParamValues(frameworkID.String())

		require.NoError(t, NewComplianceController(service).Assess(ctx))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var dto dtos.ComplianceAssessmentDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
		assert.Equal(t, frameworkID.String(), dto.FrameworkID)
		assert.Equal(t, 62.5, dto.OverallScore)
	})

	t.Run("should reject a too long assessor name", func(t *testing.T) {
		service := mocks.NewComplianceAssessmentService(t)

		ctx, _ := newTenantContext(http.MethodPost, "/", `{"assessor_name":"`+strings.Repeat("a", 256)+`"}`)
		ctx.SetParamNames("frameworkID")
		ctx.SetParamValues(frameworkID.String())

		requireHTTPError(t, NewComplianceController(service).Assess(ctx), http.StatusBadRequest)
	})

	t.Run("should map an unknown framework to 404", func(t *testing.T) {
		service := mocks.NewComplianceAssessmentService(t)
		service.On("ListAssessments", mock.Anything, "acme", frameworkID).Return(nil, errors.Wrap(shared.ErrNotFound, "could not find framework"))

		ctx, _ := newTenantContext(http.MethodGet, "/", "")
		ctx.SetParamNames("frameworkID")
		ctx.SetParamValues(frameworkID.String())

		requireHTTPError(t, NewComplianceController(service).List(ctx), http.StatusNotFound)
	})

	t.Run("should list the history", func(t *testing.T) {
		service := mocks.NewComplianceAssessmentService(t)
		service.On("ListAssessments", mock.Anything, "acme", frameworkID).Return([]models.ComplianceAssessment{
			{FrameworkID: frameworkID, OverallScore: 70},
			{FrameworkID: frameworkID, OverallScore: 60},
		}, nil)

		ctx, rec := newTenantContext(http.MethodGet, "/", "")
		ctx.SetParamNames("frameworkID")
		ctx.SetParamValues(frameworkID.String())

		require.NoError(t, NewComplianceController(service).List(ctx))

		var dtoList []dtos.ComplianceAssessmentDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dtoList))
		require.Len(t, dtoList, 2)
		assert.Equal(t, 70.0, dtoList[0].OverallScore)
	})
}
