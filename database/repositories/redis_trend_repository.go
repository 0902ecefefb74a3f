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
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/l3montree-dev/postureguard/utils"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	redisTrendPrefix     = "postureguard:trend"
	redisTrendTenantsKey = redisTrendPrefix + ":tenants"
	dayLayout            = "2006-01-02"
)

// RedisTrendRepository keeps the points of a tenant in a hash (day -> json)
// indexed by a sorted set scored with the unix seconds of the day.
type RedisTrendRepository struct {
	client *redis.Client
}

func NewRedisTrendRepository(client *redis.Client) *RedisTrendRepository {
	return &RedisTrendRepository{client: client}
}

// NewRedisTrendRepositoryFromURL parses a redis url like redis://localhost:6379/0 and pings the server.
func NewRedisTrendRepositoryFromURL(ctx context.Context, url string) (*RedisTrendRepository, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse redis url")
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "could not connect to redis")
	}
	return NewRedisTrendRepository(client), nil
}

func (r *RedisTrendRepository) Close() error {
	return r.client.Close()
}

func pointsKey(tenant string) string {
	return fmt.Sprintf("%s:%s:points", redisTrendPrefix, tenant)
}

func daysKey(tenant string) string {
	return fmt.Sprintf("%s:%s:days", redisTrendPrefix, tenant)
}

func (r *RedisTrendRepository) Upsert(ctx context.Context, point models.TrendPoint) error {
	day := utils.Day(point.Day)
	point.Day = day
	now := time.Now().UTC()
	if existing, err := r.client.HGet(ctx, pointsKey(point.Tenant), day.Format(dayLayout)).Bytes(); err == nil {
		var prev models.TrendPoint
		if json.Unmarshal(existing, &prev) == nil {
			point.CreatedAt = prev.CreatedAt
		}
	} else if !errors.Is(err, redis.Nil) {
		return shared.WrapStoreError(err, "could not read trend point")
	}
	if point.CreatedAt.IsZero() {
		point.CreatedAt = now
	}
	point.UpdatedAt = now

	data, err := json.Marshal(point)
	if err != nil {
		return errors.Wrap(err, "could not marshal trend point")
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, pointsKey(point.Tenant), day.Format(dayLayout), data)
		pipe.ZAdd(ctx, daysKey(point.Tenant), redis.Z{Score: float64(day.Unix()), Member: day.Format(dayLayout)})
		pipe.SAdd(ctx, redisTrendTenantsKey, point.Tenant)
		return nil
	})
	return shared.WrapStoreError(err, "could not upsert trend point")
}

func (r *RedisTrendRepository) EvictBefore(ctx context.Context, tenant string, day time.Time) (int64, error) {
	// exclusive upper bound
	upper := "(" + strconv.FormatInt(utils.Day(day).Unix(), 10)
	days, err := r.client.ZRangeByScore(ctx, daysKey(tenant), &redis.ZRangeBy{Min: "-inf", Max: upper}).Result()
	if err != nil {
		return 0, shared.WrapStoreError(err, "could not read trend index")
	}
	if len(days) == 0 {
		return 0, nil
	}

	var removed *redis.IntCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		removed = pipe.ZRem(ctx, daysKey(tenant), utils.Map(days, func(d string) any { return d })...)
		pipe.HDel(ctx, pointsKey(tenant), days...)
		return nil
	})
	if err != nil {
		return 0, shared.WrapStoreError(err, "could not evict trend points")
	}
	return removed.Val(), nil
}

func (r *RedisTrendRepository) Range(ctx context.Context, tenant string, from, to time.Time) ([]models.TrendPoint, error) {
	days, err := r.client.ZRangeByScore(ctx, daysKey(tenant), &redis.ZRangeBy{
		Min: strconv.FormatInt(utils.Day(from).Unix(), 10),
		Max: strconv.FormatInt(utils.Day(to).Unix(), 10),
	}).Result()
	if err != nil {
		return nil, shared.WrapStoreError(err, "could not read trend index")
	}
	points := []models.TrendPoint{}
	if len(days) == 0 {
		return points, nil
	}

	values, err := r.client.HMGet(ctx, pointsKey(tenant), days...).Result()
	if err != nil {
		return nil, shared.WrapStoreError(err, "could not read trend points")
	}
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			// index entry without a point, the hash field was removed concurrently
			continue
		}
		var point models.TrendPoint
		if err := json.Unmarshal([]byte(s), &point); err != nil {
			return nil, shared.WrapStoreError(err, fmt.Sprintf("could not decode trend point of %s", days[i]))
		}
		point.Day = utils.Day(point.Day)
		points = append(points, point)
	}
	return points, nil
}

func (r *RedisTrendRepository) Tenants(ctx context.Context) ([]string, error) {
	tenants, err := r.client.SMembers(ctx, redisTrendTenantsKey).Result()
	if err != nil {
		return nil, shared.WrapStoreError(err, "could not read trend tenants")
	}
	slices.Sort(tenants)
	return tenants, nil
}
