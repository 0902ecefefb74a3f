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
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/lmittmann/tint"
	"gorm.io/gorm"
)

type Context = echo.Context
type MiddlewareFunc = echo.MiddlewareFunc
type DB = *gorm.DB

func Ptr[T any](t T) *T {
	return &t
}

func SanitizeParam(s string) string {
	// remove trailing or leading slashes
	return strings.Trim(s, "/")
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InitLogger initializes the logger with a tint handler.
// tint is a simple logging library that allows to add colors to the log output.
// The level is read from LOG_LEVEL and defaults to info.
func InitLogger() {
	w := os.Stderr

	// set global logger with custom options
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      parseLogLevel(os.Getenv("LOG_LEVEL")),
			AddSource:  true,
			TimeFormat: time.Kitchen,
		}),
	))
}

func LoadConfig() error {
	return godotenv.Load()
}

var V = validator.New()

// NormalizeTenant turns a user provided tenant name into the slug used as storage key.
// A tenant without any slug characters is the default tenant.
func NormalizeTenant(tenant string) string {
	tenant = slug.Make(SanitizeParam(tenant))
	if tenant == "" {
		return "default"
	}
	return tenant
}

func SetTenant(ctx Context, tenant string) {
	ctx.Set("tenant", tenant)
}

func GetTenant(ctx Context) string {
	tenant, ok := ctx.Get("tenant").(string)
	if !ok || tenant == "" {
		return "default"
	}
	return tenant
}
