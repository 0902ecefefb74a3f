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
	"net/http"
	"strconv"

	"github.com/l3montree-dev/postureguard/config"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/l3montree-dev/postureguard/transformer"
	"github.com/labstack/echo/v4"
)

type PostureController struct {
	postureService shared.PostureService
	weights        config.Weights
}

func NewPostureController(postureService shared.PostureService, profile config.ScoringProfile) *PostureController {
	return &PostureController{
		postureService: postureService,
		weights:        profile.Weights,
	}
}

// GetPosture computes the posture of the tenant and appends today's trend point.
func (c *PostureController) GetPosture(ctx shared.Context) error {
	tenant := shared.GetTenant(ctx)

	posture, err := c.postureService.GetSecurityPosture(ctx.Request().Context(), tenant)
	if err != nil {
		return toHTTPError(err, "could not compute security posture")
	}

	return ctx.JSON(http.StatusOK, transformer.PostureToDTO(posture, c.weights))
}

func (c *PostureController) GetLastKnownPosture(ctx shared.Context) error {
	tenant := shared.GetTenant(ctx)

	posture, ok := c.postureService.GetLastKnownPosture(tenant)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no posture computed yet")
	}

	return ctx.JSON(http.StatusOK, transformer.PostureToDTO(posture, c.weights))
}

func (c *PostureController) GetStats(ctx shared.Context) error {
	tenant := shared.GetTenant(ctx)

	stats, err := c.postureService.GetDashboardStats(ctx.Request().Context(), tenant)
	if err != nil {
		return toHTTPError(err, "could not compute dashboard stats")
	}

	return ctx.JSON(http.StatusOK, transformer.DashboardStatsToDTO(stats))
}

// GetTrend returns the series of the last ?days days. Without the parameter the default window is used.
func (c *PostureController) GetTrend(ctx shared.Context) error {
	tenant := shared.GetTenant(ctx)

	days := 0
	if raw := ctx.QueryParam("days"); raw != "" {
		var err error
		days, err = strconv.Atoi(raw)
		if err != nil || days <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "days must be a positive integer")
		}
	}

	points, err := c.postureService.GetTrend(ctx.Request().Context(), tenant, days)
	if err != nil {
		return toHTTPError(err, "could not read trend")
	}

	return ctx.JSON(http.StatusOK, transformer.TrendToDTO(points))
}
