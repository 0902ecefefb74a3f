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
	"testing"
	"time"

	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

// trendRepositoryContract runs the behavior every trend store has to provide.
func trendRepositoryContract(t *testing.T, newRepo func(t *testing.T) shared.TrendRepository) {
	ctx := context.Background()

	t.Run("upsert replaces the point of the same day", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Upsert(ctx, models.TrendPoint{Tenant: "acme", Day: day("2025-03-01").Add(9 * time.Hour), Value: 70}))
		require.NoError(t, repo.Upsert(ctx, models.TrendPoint{Tenant: "acme", Day: day("2025-03-01").Add(17 * time.Hour), Value: 72.5}))

		points, err := repo.Range(ctx, "acme", day("2025-02-01"), day("2025-04-01"))
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.Equal(t, 72.5, points[0].Value)
		assert.True(t, points[0].Day.Equal(day("2025-03-01")))
	})

	t.Run("range is ascending and inclusive on both ends", func(t *testing.T) {
		repo := newRepo(t)
		for _, d := range []string{"2025-03-05", "2025-03-01", "2025-03-03", "2025-02-27"} {
			require.NoError(t, repo.Upsert(ctx, models.TrendPoint{Tenant: "acme", Day: day(d), Value: 50}))
		}

		points, err := repo.Range(ctx, "acme", day("2025-03-01"), day("2025-03-05"))
		require.NoError(t, err)
		require.Len(t, points, 3)
		assert.True(t, points[0].Day.Equal(day("2025-03-01")))
		assert.True(t, points[1].Day.Equal(day("2025-03-03")))
		assert.True(t, points[2].Day.Equal(day("2025-03-05")))
	})

	t.Run("range of an unknown tenant is empty", func(t *testing.T) {
		repo := newRepo(t)
		points, err := repo.Range(ctx, "nobody", day("2025-03-01"), day("2025-03-05"))
		require.NoError(t, err)
		assert.Empty(t, points)
	})

	t.Run("evict before removes strictly older points of the tenant only", func(t *testing.T) {
		repo := newRepo(t)
		for _, d := range []string{"2025-01-01", "2025-01-02", "2025-01-03"} {
			require.NoError(t, repo.Upsert(ctx, models.TrendPoint{Tenant: "acme", Day: day(d), Value: 50}))
			require.NoError(t, repo.Upsert(ctx, models.TrendPoint{Tenant: "other", Day: day(d), Value: 50}))
		}

		evicted, err := repo.EvictBefore(ctx, "acme", day("2025-01-03"))
		require.NoError(t, err)
		assert.Equal(t, int64(2), evicted)

		points, err := repo.Range(ctx, "acme", day("2024-12-01"), day("2025-02-01"))
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.True(t, points[0].Day.Equal(day("2025-01-03")))

		others, err := repo.Range(ctx, "other", day("2024-12-01"), day("2025-02-01"))
		require.NoError(t, err)
		assert.Len(t, others, 3)
	})

	t.Run("tenants lists every tenant with points", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Upsert(ctx, models.TrendPoint{Tenant: "b", Day: day("2025-01-01"), Value: 1}))
		require.NoError(t, repo.Upsert(ctx, models.TrendPoint{Tenant: "a", Day: day("2025-01-01"), Value: 1}))

		tenants, err := repo.Tenants(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, tenants)
	})
}

func TestMemoryTrendRepository(t *testing.T) {
	trendRepositoryContract(t, func(t *testing.T) shared.TrendRepository {
		return NewMemoryTrendRepository()
	})

	t.Run("respects a cancelled context", func(t *testing.T) {
		repo := NewMemoryTrendRepository()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := repo.Upsert(ctx, models.TrendPoint{Tenant: "acme", Day: day("2025-01-01")})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("keeps the creation time on replace", func(t *testing.T) {
		repo := NewMemoryTrendRepository()
		ctx := context.Background()
		require.NoError(t, repo.Upsert(ctx, models.TrendPoint{Tenant: "acme", Day: day("2025-01-01"), Value: 1}))
		first, err := repo.Range(ctx, "acme", day("2025-01-01"), day("2025-01-01"))
		require.NoError(t, err)

		require.NoError(t, repo.Upsert(ctx, models.TrendPoint{Tenant: "acme", Day: day("2025-01-01"), Value: 2}))
		second, err := repo.Range(ctx, "acme", day("2025-01-01"), day("2025-01-01"))
		require.NoError(t, err)

		assert.Equal(t, first[0].CreatedAt, second[0].CreatedAt)
		assert.Equal(t, 2.0, second[0].Value)
	})
}
