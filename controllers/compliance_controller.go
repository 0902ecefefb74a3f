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

	"github.com/google/uuid"
	"github.com/l3montree-dev/postureguard/dtos"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/l3montree-dev/postureguard/transformer"
	"github.com/l3montree-dev/postureguard/utils"
	"github.com/labstack/echo/v4"
)

type ComplianceController struct {
	complianceAssessmentService shared.ComplianceAssessmentService
}

func NewComplianceController(complianceAssessmentService shared.ComplianceAssessmentService) *ComplianceController {
	return &ComplianceController{
		complianceAssessmentService: complianceAssessmentService,
	}
}

func frameworkIDParam(ctx shared.Context) (uuid.UUID, error) {
	frameworkID, err := uuid.Parse(ctx.Param("frameworkID"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid framework id").WithInternal(err)
	}
	return frameworkID, nil
}

func (c *ComplianceController) Assess(ctx shared.Context) error {
	tenant := shared.GetTenant(ctx)
	frameworkID, err := frameworkIDParam(ctx)
	if err != nil {
		return err
	}

	var req dtos.CreateComplianceAssessmentRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not bind request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	assessment, err := c.complianceAssessmentService.AssessFramework(ctx.Request().Context(), tenant, frameworkID, req.AssessorName, req.Notes)
	if err != nil {
		return toHTTPError(err, "could not assess framework")
	}

	return ctx.JSON(http.StatusCreated, transformer.ComplianceAssessmentToDTO(assessment))
}

func (c *ComplianceController) List(ctx shared.Context) error {
	tenant := shared.GetTenant(ctx)
	frameworkID, err := frameworkIDParam(ctx)
	if err != nil {
		return err
	}

	assessments, err := c.complianceAssessmentService.ListAssessments(ctx.Request().Context(), tenant, frameworkID)
	if err != nil {
		return toHTTPError(err, "could not list assessments")
	}

	return ctx.JSON(http.StatusOK, utils.Map(assessments, transformer.ComplianceAssessmentToDTO))
}
