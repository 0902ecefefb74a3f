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

package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

const RequestTimeout = 10 * time.Second

var defaultCORSOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

// CORSOrigins reads the comma separated CORS_ORIGINS variable.
func CORSOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return defaultCORSOrigins
	}
	origins := make([]string, 0)
	for origin := range strings.SplitSeq(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return defaultCORSOrigins
	}
	return origins
}

func registerMiddlewares(e *echo.Echo, origins []string) {
	e.Pre(middleware.AddTrailingSlash())
	e.Use(otelecho.Middleware("postureguard"))
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     origins,
			AllowHeaders:     middleware.DefaultCORSConfig.AllowHeaders,
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
		},
	))

	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: RequestTimeout,
		ErrorHandler: func(err error, ctx echo.Context) error {
			// handlers map deadlines themselves, only a bare deadline error is translated here
			if errors.Is(err, context.DeadlineExceeded) {
				if _, ok := err.(*echo.HTTPError); !ok {
					return echo.NewHTTPError(http.StatusGatewayTimeout, "request timed out").WithInternal(err)
				}
			}
			return err
		},
	}))

	e.Use(logger())

	e.Use(recovermiddleware())

	e.HTTPErrorHandler = HTTPErrorHandler(e)
}

func HTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		// do the logging straight inside the error handler
		// this keeps controller methods clean
		slog.Error(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)

		if ctx.Response().Committed {
			return
		}

		he, ok := err.(*echo.HTTPError)
		if ok {
			if he.Internal != nil {
				if herr, ok := he.Internal.(*echo.HTTPError); ok {
					he = herr
				}
			}
		} else {
			he = &echo.HTTPError{
				Code:    http.StatusInternalServerError,
				Message: http.StatusText(http.StatusInternalServerError),
			}
		}

		code := he.Code
		message := he.Message

		switch m := he.Message.(type) {
		case string:
			if e.Debug {
				message = echo.Map{"message": m, "error": err.Error()}
			} else {
				message = echo.Map{"message": m}
			}
		case json.Marshaler:
			// do nothing - this type knows how to format itself to JSON
		case error:
			message = echo.Map{"message": m.Error()}
		}

		// Send response
		if ctx.Request().Method == http.MethodHead {
			if err := ctx.NoContent(he.Code); err != nil {
				slog.Error("could not send error response", "error", err)
			}
		} else {
			if err := ctx.JSON(code, message); err != nil {
				slog.Error("could not send error response", "error", err)
			}
		}
	}
}

func Server() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(99)
	registerMiddlewares(e, CORSOrigins())
	return e
}
