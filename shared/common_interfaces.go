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

package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/l3montree-dev/postureguard/scoring"
)

type DaemonRunner interface {
	RunPostureRecomputation(ctx context.Context) error
	Start()
}

type LeaderElector interface {
	IsLeader() bool
}

type ConfigRepository interface {
	Save(tx DB, config *models.Config) error
	GetDB(tx DB) DB
}

type ConfigService interface {
	// retrieves the value for the given key and marshals it into v
	GetJSONConfig(key string, v any) error
	SetJSONConfig(key string, v any) error
}

type VulnerabilityRepository interface {
	ListByTenant(tx DB, tenant string) ([]models.Vulnerability, error)
	Tenants(tx DB) ([]string, error)
}

type IncidentRepository interface {
	ListByTenant(tx DB, tenant string) ([]models.Incident, error)
	Tenants(tx DB) ([]string, error)
}

type ComplianceFrameworkRepository interface {
	// frameworks with their controls
	ListByTenant(tx DB, tenant string) ([]models.ComplianceFramework, error)
	ReadWithControls(tx DB, tenant string, id uuid.UUID) (models.ComplianceFramework, error)
	UpdateLastAssessedAt(tx DB, id uuid.UUID, at time.Time) error
	Tenants(tx DB) ([]string, error)
	Transaction(ctx context.Context, fn func(tx DB) error) error
}

type ComplianceAssessmentRepository interface {
	Create(tx DB, assessment *models.ComplianceAssessment) error
	ListByFramework(tx DB, frameworkID uuid.UUID) ([]models.ComplianceAssessment, error)
}

// SnapshotRepository reads every record store of a tenant at a single logical instant.
type SnapshotRepository interface {
	ReadSnapshot(ctx context.Context, tenant string) (scoring.Snapshot, error)
	Tenants(ctx context.Context) ([]string, error)
}

// TrendRepository stores at most one point per tenant and day.
type TrendRepository interface {
	// Upsert inserts the point or replaces the point of the same tenant and day
	Upsert(ctx context.Context, point models.TrendPoint) error
	// EvictBefore deletes every point of the tenant older than day
	EvictBefore(ctx context.Context, tenant string, day time.Time) (int64, error)
	// Range returns the points with from <= day <= to ascending by day
	Range(ctx context.Context, tenant string, from, to time.Time) ([]models.TrendPoint, error)
	Tenants(ctx context.Context) ([]string, error)
}

type TrendService interface {
	AppendSnapshot(ctx context.Context, point models.TrendPoint) error
	GetSeries(ctx context.Context, tenant string, windowDays int) ([]models.TrendPoint, error)
	Tenants(ctx context.Context) ([]string, error)
}

type Posture struct {
	scoring.Result
	Trend []models.TrendPoint
}

type PostureService interface {
	GetSecurityPosture(ctx context.Context, tenant string) (Posture, error)
	GetDashboardStats(ctx context.Context, tenant string) (scoring.Result, error)
	GetLastKnownPosture(tenant string) (Posture, bool)
	GetTrend(ctx context.Context, tenant string, windowDays int) ([]models.TrendPoint, error)
	Tenants(ctx context.Context) ([]string, error)
}

type ComplianceAssessmentService interface {
	AssessFramework(ctx context.Context, tenant string, frameworkID uuid.UUID, assessorName, notes *string) (models.ComplianceAssessment, error)
	ListAssessments(ctx context.Context, tenant string, frameworkID uuid.UUID) ([]models.ComplianceAssessment, error)
}
