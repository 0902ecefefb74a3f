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
	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/l3montree-dev/postureguard/utils"
)

type incidentRepository struct {
	utils.Repository[models.Incident, shared.DB]
	db shared.DB
}

func NewIncidentRepository(db shared.DB) *incidentRepository {
	return &incidentRepository{
		db:         db,
		Repository: newGormRepository[models.Incident](db),
	}
}

func (r *incidentRepository) ListByTenant(tx shared.DB, tenant string) ([]models.Incident, error) {
	var incidents = []models.Incident{}
	if err := r.GetDB(tx).Where("tenant = ?", tenant).Order("detected_at ASC, id ASC").Find(&incidents).Error; err != nil {
		return nil, err
	}
	return incidents, nil
}

func (r *incidentRepository) Tenants(tx shared.DB) ([]string, error) {
	return distinctTenants(r.GetDB(tx), models.Incident{})
}
