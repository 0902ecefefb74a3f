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

package commands

import (
	"context"
	"log/slog"

	"github.com/l3montree-dev/postureguard/config"
	"github.com/l3montree-dev/postureguard/database"
	"github.com/l3montree-dev/postureguard/database/repositories"
	"github.com/l3montree-dev/postureguard/services"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// resolveProfile prefers an explicit file, then a "scoring" section of the config file,
// then SCORING_PROFILE.
func resolveProfile(file string) (config.ScoringProfile, error) {
	if file != "" {
		return config.LoadScoringProfile(file)
	}
	if viper.IsSet("scoring") {
		return config.DecodeScoringProfile(viper.GetStringMap("scoring"))
	}
	return config.ScoringProfileFromEnv()
}

// withApp builds the database and repository graph, populates targets and runs fn between start and stop.
// The cli never subscribes to the broker and never takes part in the leader election.
func withApp(ctx context.Context, fn func(ctx context.Context) error, options ...fx.Option) error {
	app := fx.New(
		append([]fx.Option{
			fx.NopLogger,
			fx.Supply(database.GetPoolConfigFromEnv()),
			database.Module,
			repositories.Module,
		}, options...)...,
	)
	if err := app.Err(); err != nil {
		return err
	}

	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			slog.Error("could not stop application", "err", err)
		}
	}()

	return fn(ctx)
}

func withPostureService(ctx context.Context, profile config.ScoringProfile, fn func(ctx context.Context, postureService *services.PostureService) error) error {
	var snapshotRepository shared.SnapshotRepository
	var trendRepository shared.TrendRepository

	return withApp(ctx, func(ctx context.Context) error {
		trendService := services.NewTrendService(trendRepository, profile)
		return fn(ctx, services.NewPostureService(snapshotRepository, trendService, profile, nil))
	}, fx.Populate(&snapshotRepository, &trendRepository))
}
