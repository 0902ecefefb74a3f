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

package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/l3montree-dev/postureguard/config"
	"github.com/l3montree-dev/postureguard/database/models"
	"github.com/l3montree-dev/postureguard/monitoring"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/l3montree-dev/postureguard/utils"
	"github.com/pkg/errors"
)

type TrendService struct {
	repository shared.TrendRepository
	profile    config.ScoringProfile
	// serializes appends of the same tenant inside this process.
	// Other instances are serialized by the upsert of the store.
	locks *utils.KeyedMutex
	now   func() time.Time
}

func NewTrendService(repository shared.TrendRepository, profile config.ScoringProfile) *TrendService {
	return &TrendService{
		repository: repository,
		profile:    profile,
		locks:      &utils.KeyedMutex{},
		now:        time.Now,
	}
}

// retentionStart returns the oldest day kept on today.
func (s *TrendService) retentionStart(today time.Time) time.Time {
	return utils.WindowStart(today, s.profile.TrendRetentionDays)
}

// AppendSnapshot stores the point for its UTC day, replacing a point of the same day.
// Points which fell out of the retention window are evicted afterwards.
// Days after today are rejected.
func (s *TrendService) AppendSnapshot(ctx context.Context, point models.TrendPoint) error {
	point.Day = utils.Day(point.Day)

	unlock := s.locks.Lock(point.Tenant)
	defer unlock()

	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "trend append aborted")
	}

	today := utils.Day(s.now())
	if point.Day.After(today) {
		return errors.Errorf("trend point of %s lies after today", point.Day.Format(time.DateOnly))
	}
	cutoff := s.retentionStart(today)
	if point.Day.Before(cutoff) {
		slog.Warn("dropping trend point outside of the retention window", "tenant", point.Tenant, "day", point.Day.Format(time.DateOnly), "retentionStart", cutoff.Format(time.DateOnly))
		return nil
	}

	if err := s.repository.Upsert(ctx, point); err != nil {
		return errors.Wrap(err, "could not append trend point")
	}
	monitoring.TrendPointsAppended.Inc()

	evicted, err := s.repository.EvictBefore(ctx, point.Tenant, cutoff)
	if err != nil {
		return errors.Wrap(err, "could not evict old trend points")
	}
	if evicted > 0 {
		monitoring.TrendPointsEvicted.Add(float64(evicted))
		slog.Debug("evicted trend points", "tenant", point.Tenant, "amount", evicted)
	}
	return nil
}

// GetSeries returns the points of the last windowDays days (today included) ascending by day.
// A window <= 0 uses the default window, a window larger than the retention is capped.
// Missing days are not padded.
func (s *TrendService) GetSeries(ctx context.Context, tenant string, windowDays int) ([]models.TrendPoint, error) {
	if windowDays <= 0 {
		windowDays = s.profile.DefaultTrendWindowDays
	}
	windowDays = min(windowDays, s.profile.TrendRetentionDays)

	today := utils.Day(s.now())
	points, err := s.repository.Range(ctx, tenant, utils.WindowStart(today, windowDays), today)
	if err != nil {
		return nil, errors.Wrap(err, "could not read trend series")
	}
	return points, nil
}

func (s *TrendService) Tenants(ctx context.Context) ([]string, error) {
	return s.repository.Tenants(ctx)
}
