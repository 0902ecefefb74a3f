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
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/labstack/echo/v4"
)

// all middlewares which modify the current request context

// TenantMiddleware normalizes the :tenant path parameter into a slug and stores it in the context.
func TenantMiddleware() shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			shared.SetTenant(ctx, shared.NormalizeTenant(ctx.Param("tenant")))
			return next(ctx)
		}
	}
}
