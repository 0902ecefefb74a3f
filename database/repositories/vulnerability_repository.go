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

type vulnerabilityRepository struct {
	utils.Repository[models.Vulnerability, shared.DB]
	db shared.DB
}

func NewVulnerabilityRepository(db shared.DB) *vulnerabilityRepository {
	return &vulnerabilityRepository{
		db:         db,
		Repository: newGormRepository[models.Vulnerability](db),
	}
}

func (r *vulnerabilityRepository) ListByTenant(tx shared.DB, tenant string) ([]models.Vulnerability, error) {
	var vulns = []models.Vulnerability{}
	if err := r.GetDB(tx).Where("tenant = ?", tenant).Order("discovered_at ASC, id ASC").Find(&vulns).Error; err != nil {
		return nil, err
	}
	return vulns, nil
}

func (r *vulnerabilityRepository) Tenants(tx shared.DB) ([]string, error) {
	return distinctTenants(r.GetDB(tx), models.Vulnerability{})
}
