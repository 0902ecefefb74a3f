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
	"database/sql"

	"github.com/l3montree-dev/postureguard/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormRepository[T utils.Tabler] struct {
	db *gorm.DB
}

func newGormRepository[T utils.Tabler](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{
		db: db,
	}
}

func (g *GormRepository[T]) Save(tx *gorm.DB, t *T) error {
	return g.GetDB(tx).Save(t).Error
}

// Upsert inserts the rows. On a conflict of conflictingColumns only updateOnly is updated (all columns if empty).
func (g *GormRepository[T]) Upsert(tx *gorm.DB, t *[]*T, conflictingColumns []clause.Column, updateOnly []string) error {
	if len(*t) == 0 {
		return nil
	}
	onConflict := clause.OnConflict{Columns: conflictingColumns}
	if len(updateOnly) > 0 {
		onConflict.DoUpdates = clause.AssignmentColumns(updateOnly)
	} else {
		onConflict.UpdateAll = true
	}
	return g.GetDB(tx).Clauses(onConflict).Create(t).Error
}

// TransactionWithContext rolls back if f returns an error or the context is done before commit.
func (g *GormRepository[T]) TransactionWithContext(ctx context.Context, f func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	tx := g.db.WithContext(ctx).Begin(opts...)
	if tx.Error != nil {
		return tx.Error
	}
	err := f(tx)
	if err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (g *GormRepository[T]) GetDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return g.db
}

func (g *GormRepository[T]) Create(tx *gorm.DB, t *T) error {
	return g.GetDB(tx).Create(t).Error
}

// distinctTenants returns the tenants owning at least one row of the table of model.
func distinctTenants(db *gorm.DB, model utils.Tabler) ([]string, error) {
	var tenants []string
	err := db.Table(model.TableName()).Distinct("tenant").Order("tenant").Pluck("tenant", &tenants).Error
	return tenants, err
}
