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

package repositories

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/l3montree-dev/postureguard/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewConfigRepository, fx.As(new(shared.ConfigRepository)))),
	fx.Provide(fx.Annotate(NewVulnerabilityRepository, fx.As(new(shared.VulnerabilityRepository)))),
	fx.Provide(fx.Annotate(NewIncidentRepository, fx.As(new(shared.IncidentRepository)))),
	fx.Provide(fx.Annotate(NewComplianceFrameworkRepository, fx.As(new(shared.ComplianceFrameworkRepository)))),
	fx.Provide(fx.Annotate(NewComplianceAssessmentRepository, fx.As(new(shared.ComplianceAssessmentRepository)))),
	fx.Provide(fx.Annotate(NewSnapshotRepository, fx.As(new(shared.SnapshotRepository)))),
	fx.Provide(provideTrendRepository),
)

func provideTrendRepository(lc fx.Lifecycle, db shared.DB) (shared.TrendRepository, error) {
	repo, err := NewTrendRepositoryFromEnv(db)
	if err != nil {
		return nil, err
	}
	if closer, ok := repo.(io.Closer); ok {
		lc.Append(fx.StopHook(closer.Close))
	}
	return repo, nil
}

// NewTrendRepositoryFromEnv selects the trend store by TREND_STORE (postgres, redis or memory).
func NewTrendRepositoryFromEnv(db shared.DB) (shared.TrendRepository, error) {
	store := strings.ToLower(strings.TrimSpace(os.Getenv("TREND_STORE")))
	switch store {
	case "", "postgres":
		return NewTrendRepository(db), nil
	case "redis":
		url := os.Getenv("REDIS_URL")
		if url == "" {
			url = "redis://localhost:6379/0"
		}
		slog.Info("using redis trend store")
		return NewRedisTrendRepositoryFromURL(context.Background(), url)
	case "memory":
		slog.Warn("using in-memory trend store, trend points are lost on restart and not shared between instances")
		return NewMemoryTrendRepository(), nil
	default:
		return nil, fmt.Errorf("unknown TREND_STORE %q, expected postgres, redis or memory", store)
	}
}
