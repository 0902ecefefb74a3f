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
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type complianceFrameworkRepository struct {
	*GormRepository[models.ComplianceFramework]
	db shared.DB
}

func NewComplianceFrameworkRepository(db shared.DB) *complianceFrameworkRepository {
	return &complianceFrameworkRepository{
		db:             db,
		GormRepository: newGormRepository[models.ComplianceFramework](db),
	}
}

func orderedControls(db *gorm.DB) *gorm.DB {
	return db.Order("control_id ASC")
}

func (r *complianceFrameworkRepository) ListByTenant(tx shared.DB, tenant string) ([]models.ComplianceFramework, error) {
	var frameworks = []models.ComplianceFramework{}
	if err := r.GetDB(tx).Preload("Controls", orderedControls).Where("tenant = ?", tenant).Order("name ASC").Find(&frameworks).Error; err != nil {
		return nil, err
	}
	return frameworks, nil
}

func (r *complianceFrameworkRepository) ReadWithControls(tx shared.DB, tenant string, id uuid.UUID) (models.ComplianceFramework, error) {
	var framework models.ComplianceFramework
	err := r.GetDB(tx).Preload("Controls", orderedControls).Where("tenant = ?", tenant).First(&framework, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return framework, errors.Wrapf(shared.ErrNotFound, "compliance framework %s", id)
	}
	return framework, err
}

func (r *complianceFrameworkRepository) UpdateLastAssessedAt(tx shared.DB, id uuid.UUID, at time.Time) error {
	return r.GetDB(tx).Model(&models.ComplianceFramework{}).Where("id = ?", id).Update("last_assessed_at", at).Error
}

func (r *complianceFrameworkRepository) Tenants(tx shared.DB) ([]string, error) {
	return distinctTenants(r.GetDB(tx), models.ComplianceFramework{})
}

func (r *complianceFrameworkRepository) Transaction(ctx context.Context, fn func(tx shared.DB) error) error {
	return r.TransactionWithContext(ctx, fn)
}
