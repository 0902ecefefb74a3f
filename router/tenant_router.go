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

package router

import (
	"github.com/l3montree-dev/postureguard/controllers"
	"github.com/l3montree-dev/postureguard/middlewares"
	"github.com/labstack/echo/v4"
)

type TenantRouter struct {
	*echo.Group
}

func NewTenantRouter(
	apiV1Router APIV1Router,
	postureController *controllers.PostureController,
	complianceController *controllers.ComplianceController,
) TenantRouter {
	/**
	Tenant scoped router
	All routes below this line are scoped to a single tenant.
	*/
	tenantRouter := apiV1Router.Group.Group("/tenants/:tenant", middlewares.TenantMiddleware())

	dashboardRouter := tenantRouter.Group("/dashboard")
	dashboardRouter.GET("/posture/", postureController.GetPosture)
	dashboardRouter.GET("/posture/last-known/", postureController.GetLastKnownPosture)
	dashboardRouter.GET("/stats/", postureController.GetStats)
	dashboardRouter.GET("/trend/", postureController.GetTrend)

	frameworkRouter := tenantRouter.Group("/compliance/frameworks/:frameworkID")
	frameworkRouter.GET("/assessments/", complianceController.List)
	frameworkRouter.POST("/assessments/", complianceController.Assess)

	return TenantRouter{Group: tenantRouter}
}
