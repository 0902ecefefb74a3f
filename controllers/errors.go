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
	"net/http"

	"github.com/l3montree-dev/postureguard/scoring"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// toHTTPError maps the error categories of the services onto status codes.
// The original error is kept as internal error for the logging inside the error handler.
func toHTTPError(err error, msg string) error {
	var validationErr *scoring.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, echo.Map{
			"message":  validationErr.Error(),
			"recordId": validationErr.RecordID.String(),
			"field":    validationErr.Field,
		}).WithInternal(err)
	case errors.Is(err, scoring.ErrInvalidRecord):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, msg).WithInternal(err)
	case errors.Is(err, shared.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, msg).WithInternal(err)
	case errors.Is(err, context.DeadlineExceeded):
		return echo.NewHTTPError(http.StatusGatewayTimeout, msg+": deadline exceeded").WithInternal(err)
	case errors.Is(err, context.Canceled):
		return echo.NewHTTPError(http.StatusServiceUnavailable, msg+": request canceled").WithInternal(err)
	case errors.Is(err, shared.ErrStoreUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, msg+": store unavailable").WithInternal(err)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, msg).WithInternal(err)
}
