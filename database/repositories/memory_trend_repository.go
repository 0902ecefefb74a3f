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
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/l3montree-dev/postureguard/utils"
)

// MemoryTrendRepository is a process local trend store. Used by tests and TREND_STORE=memory.
type MemoryTrendRepository struct {
	mu     sync.RWMutex
	points map[string]map[time.Time]models.TrendPoint
}

func NewMemoryTrendRepository() *MemoryTrendRepository {
	return &MemoryTrendRepository{
		points: make(map[string]map[time.Time]models.TrendPoint),
	}
}

func (r *MemoryTrendRepository) Upsert(ctx context.Context, point models.TrendPoint) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	point.Day = utils.Day(point.Day)
	now := time.Now().UTC()
	byDay, ok := r.points[point.Tenant]
	if !ok {
		byDay = make(map[time.Time]models.TrendPoint)
		r.points[point.Tenant] = byDay
	}
	if prev, ok := byDay[point.Day]; ok {
		point.CreatedAt = prev.CreatedAt
	} else {
		point.CreatedAt = now
	}
	point.UpdatedAt = now
	byDay[point.Day] = point
	return nil
}

func (r *MemoryTrendRepository) EvictBefore(ctx context.Context, tenant string, day time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	day = utils.Day(day)
	var evicted int64
	for d := range r.points[tenant] {
		if d.Before(day) {
			delete(r.points[tenant], d)
			evicted++
		}
	}
	return evicted, nil
}

func (r *MemoryTrendRepository) Range(ctx context.Context, tenant string, from, to time.Time) ([]models.TrendPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	from, to = utils.Day(from), utils.Day(to)
	points := []models.TrendPoint{}
	for d, p := range r.points[tenant] {
		if !d.Before(from) && !d.After(to) {
			points = append(points, p)
		}
	}
	slices.SortFunc(points, func(a, b models.TrendPoint) int {
		return a.Day.Compare(b.Day)
	})
	return points, nil
}

func (r *MemoryTrendRepository) Tenants(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	tenants := slices.Sorted(maps.Keys(r.points))
	return tenants, nil
}
