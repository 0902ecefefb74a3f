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

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/l3montree-dev/postureguard/utils"
)

type complianceAssessmentRepository struct {
	utils.Repository[models.ComplianceAssessment, shared.DB]
	db shared.DB
}

func NewComplianceAssessmentRepository(db shared.DB) *complianceAssessmentRepository {
	return &complianceAssessmentRepository{
		db:         db,
		Repository: newGormRepository[models.ComplianceAssessment](db),
	}
}

// ListByFramework returns the assessment history, newest first.
func (r *complianceAssessmentRepository) ListByFramework(tx shared.DB, frameworkID uuid.UUID) ([]models.ComplianceAssessment, error) {
	var assessments = []models.ComplianceAssessment{}
	if err := r.GetDB(tx).Where("framework_id = ?", frameworkID).Order("assessed_at DESC, created_at DESC").Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}
