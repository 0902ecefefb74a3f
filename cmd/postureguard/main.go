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

package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/l3montree-dev/postureguard/cmd/postureguard/api"
	"github.com/l3montree-dev/postureguard/controllers"
	"github.com/l3montree-dev/postureguard/daemons"
	"github.com/l3montree-dev/postureguard/database"
	"github.com/l3montree-dev/postureguard/database/repositories"
	"github.com/l3montree-dev/postureguard/monitoring"
	"github.com/l3montree-dev/postureguard/router"
	"github.com/l3montree-dev/postureguard/services"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var release string // Will be filled at build time

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	fx.New(
		fx.Supply(database.GetPoolConfigFromEnv()),
		database.Module,
		// migrations run before any other invoke touches the database
		fx.Invoke(runMigrations),
		fx.Invoke(initTracing),
		fx.Provide(api.NewServer),
		repositories.Module,
		services.ServiceModule,
		controllers.ControllerModule,
		router.RouterModule,
		daemons.Module,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(TenantRouter router.TenantRouter) {}),
		fx.Invoke(func(server api.Server) {}),
	).Run()
}

func runMigrations(db shared.DB) error {
	if os.Getenv("DISABLE_AUTOMIGRATE") == "true" {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
		return nil
	}
	slog.Info("running database migrations...")
	if err := database.RunMigrationsWithDB(db); err != nil {
		return errors.Wrap(err, "failed to run database migrations")
	}
	return nil
}

func initTracing(lc fx.Lifecycle) error {
	shutdown, err := monitoring.InitTracing(context.Background())
	if err != nil {
		return errors.Wrap(err, "could not initialize tracing")
	}
	lc.Append(fx.StopHook(shutdown))
	return nil
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("ERROR_TRACKING_DSN"),
		Environment: environment,
		Release:     release,

		// In debug mode, the debug information is printed to stdout to help you
		// understand what Sentry is doing.
		Debug: environment == "dev",

		// Configures whether SDK should generate and attach stack traces to pure
		// capture message calls.
		AttachStacktrace: true,

		SendDefaultPII: false,
	})
	if err != nil {
		slog.Error("Failed to init sentry", "err", err)
	}
}
