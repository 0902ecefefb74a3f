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

	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/l3montree-dev/postureguard/utils"
	"gorm.io/gorm/clause"
)

type trendRepository struct {
	*GormRepository[models.TrendPoint]
	db shared.DB
}

func NewTrendRepository(db shared.DB) *trendRepository {
	return &trendRepository{
		db:             db,
		GormRepository: newGormRepository[models.TrendPoint](db),
	}
}

var trendPointUpdateColumns = []string{
	"value",
	"risk_level",
	"vulnerability_score",
	"incident_score",
	"compliance_score",
	"breakdown",
	"updated_at",
}

func (r *trendRepository) Upsert(ctx context.Context, point models.TrendPoint) error {
	point.Day = utils.Day(point.Day)
	points := []*models.TrendPoint{&point}
	err := r.GormRepository.Upsert(r.db.WithContext(ctx), &points, []clause.Column{{Name: "tenant"}, {Name: "day"}}, trendPointUpdateColumns)
	return shared.WrapStoreError(err, "could not upsert trend point")
}

func (r *trendRepository) EvictBefore(ctx context.Context, tenant string, day time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("tenant = ? AND day < ?", tenant, utils.Day(day)).Delete(&models.TrendPoint{})
	if res.Error != nil {
		return 0, shared.WrapStoreError(res.Error, "could not evict trend points")
	}
	return res.RowsAffected, nil
}

func (r *trendRepository) Range(ctx context.Context, tenant string, from, to time.Time) ([]models.TrendPoint, error) {
	var points = []models.TrendPoint{}
	err := r.db.WithContext(ctx).Where("tenant = ?", tenant).
		Where("day >= ? AND day <= ?", utils.Day(from), utils.Day(to)).
		Order("day ASC").Find(&points).Error
	if err != nil {
		return nil, shared.WrapStoreError(err, "could not read trend points")
	}
	for i := range points {
		points[i].Day = utils.Day(points[i].Day)
	}
	return points, nil
}

func (r *trendRepository) Tenants(ctx context.Context) ([]string, error) {
	tenants, err := distinctTenants(r.db.WithContext(ctx), models.TrendPoint{})
	return tenants, shared.WrapStoreError(err, "could not read trend tenants")
}
