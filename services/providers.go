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

package services

import (
	"context"
	"log/slog"

	"github.com/l3montree-dev/postureguard/config"
	"github.com/l3montree-dev/postureguard/shared"
	"go.uber.org/fx"
)

// ServiceModule provides all service-layer constructors
var ServiceModule = fx.Options(
	fx.Provide(config.ScoringProfileFromEnv),
	fx.Provide(fx.Annotate(NewConfigService, fx.As(new(shared.ConfigService)))),
	fx.Provide(fx.Annotate(NewTrendService, fx.As(new(shared.TrendService)))),
	fx.Provide(NewPostureService),
	fx.Provide(func(s *PostureService) shared.PostureService { return s }),
	fx.Provide(fx.Annotate(NewComplianceAssessmentService, fx.As(new(shared.ComplianceAssessmentService)))),
	fx.Provide(provideLeaderElector),
	fx.Invoke(syncLastKnownPostures),
)

func provideLeaderElector(lc fx.Lifecycle, configService shared.ConfigService) shared.LeaderElector {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.StopHook(cancel))
	return NewDatabaseLeaderElector(ctx, configService)
}

func syncLastKnownPostures(lc fx.Lifecycle, postureService *PostureService) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := postureService.SyncLastKnownPostures(ctx); err != nil {
					slog.Error("stopped syncing last known postures", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
