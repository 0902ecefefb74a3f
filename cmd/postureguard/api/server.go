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

package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/l3montree-dev/postureguard/middlewares"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StartedAt is reported as uptime by the info endpoint.
var StartedAt = time.Now()

type Server struct {
	Echo *echo.Echo
}

func listenAddr() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return ":" + port
}

// NewServer creates the echo instance and binds it to the fx lifecycle.
// The routes are registered by the routers before the lifecycle starts.
func NewServer(lc fx.Lifecycle) Server {
	e := middlewares.Server()
	addr := listenAddr()

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			StartedAt = time.Now()
			go func() {
				slog.Info("starting server", "addr", addr)
				if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("server stopped unexpectedly", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			slog.Info("shutting down server")
			return e.Shutdown(ctx)
		},
	})

	return Server{Echo: e}
}
