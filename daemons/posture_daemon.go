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

package daemons

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/l3montree-dev/postureguard/monitoring"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/l3montree-dev/postureguard/utils"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const (
	postureRecomputationKey = "daemons.postureRecomputation"
	defaultInterval         = time.Hour
	// the ticker never waits longer than this before checking the last run again
	maxTickInterval = 5 * time.Minute
	// recomputations per second, every recomputation is a full snapshot read
	tenantsPerSecond = 5
	concurrency      = 4
)

// PostureDaemon recomputes the posture of every tenant on the leader instance,
// so the trend series gets a point per day even without dashboard traffic.
type PostureDaemon struct {
	postureService shared.PostureService
	configService  shared.ConfigService
	leaderElector  shared.LeaderElector

	interval time.Duration
	limiter  *rate.Limiter
	now      func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
}

var _ shared.DaemonRunner = (*PostureDaemon)(nil)

// IntervalFromEnv parses POSTURE_DAEMON_INTERVAL as go duration.
func IntervalFromEnv() (time.Duration, error) {
	raw := os.Getenv("POSTURE_DAEMON_INTERVAL")
	if raw == "" {
		return defaultInterval, nil
	}
	interval, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errors.Wrap(err, "invalid POSTURE_DAEMON_INTERVAL")
	}
	if interval <= 0 {
		return 0, errors.Errorf("invalid POSTURE_DAEMON_INTERVAL: must be positive, got %s", interval)
	}
	return interval, nil
}

func newPostureDaemon(postureService shared.PostureService, configService shared.ConfigService, leaderElector shared.LeaderElector, interval time.Duration, limiter *rate.Limiter) *PostureDaemon {
	ctx, cancel := context.WithCancel(context.Background())
	return &PostureDaemon{
		postureService: postureService,
		configService:  configService,
		leaderElector:  leaderElector,
		interval:       interval,
		limiter:        limiter,
		now:            time.Now,
		ctx:            ctx,
		cancel:         cancel,
	}
}

func NewPostureDaemon(postureService shared.PostureService, configService shared.ConfigService, leaderElector shared.LeaderElector) (*PostureDaemon, error) {
	interval, err := IntervalFromEnv()
	if err != nil {
		return nil, err
	}
	return newPostureDaemon(postureService, configService, leaderElector, interval, rate.NewLimiter(rate.Limit(tenantsPerSecond), 1)), nil
}

// RunPostureRecomputation computes the posture of every known tenant.
// A failing tenant is logged and does not stop the others.
func (d *PostureDaemon) RunPostureRecomputation(ctx context.Context) error {
	start := time.Now()
	defer func() {
		monitoring.PostureDaemonDuration.Observe(time.Since(start).Minutes())
	}()

	tenants, err := d.postureService.Tenants(ctx)
	if err != nil {
		return errors.Wrap(err, "could not list tenants")
	}

	group := utils.ErrGroup[string](concurrency)
	var waitErr error
	for _, tenant := range tenants {
		if waitErr = d.limiter.Wait(ctx); waitErr != nil {
			break
		}
		monitoring.PostureDaemonTenantsAmount.Inc()
		group.Go(func() (string, error) {
			if _, err := d.postureService.GetSecurityPosture(ctx, tenant); err != nil {
				slog.Error("could not recompute posture", "tenant", tenant, "err", err)
				return "", nil
			}
			monitoring.PostureDaemonTenantsSuccess.Inc()
			return tenant, nil
		})
	}

	recomputed, _ := group.WaitAndCollect()
	slog.Info("posture recomputation finished", "tenants", len(tenants), "recomputed", len(recomputed), "duration", time.Since(start))

	if waitErr != nil {
		return errors.Wrap(waitErr, "posture recomputation aborted")
	}
	return nil
}

func (d *PostureDaemon) tick() {
	defer func() {
		if r := recover(); r != nil {
			monitoring.RecoverAndAlert("panic in posture daemon", r)
		}
	}()

	if !d.leaderElector.IsLeader() {
		slog.Debug("not the leader - skipping posture recomputation")
		return
	}

	now := d.now()
	if !shouldRun(d.configService, postureRecomputationKey, d.interval, now) {
		return
	}

	slog.Info("this instance is the leader - recomputing postures")
	if err := d.RunPostureRecomputation(d.ctx); err != nil {
		slog.Error("could not recompute postures", "err", err)
		return
	}
	if err := markRun(d.configService, postureRecomputationKey, now); err != nil {
		slog.Error("could not mark posture recomputation as done", "err", err)
	}
}

func (d *PostureDaemon) Start() {
	go func() {
		d.tick()
		ticker := time.NewTicker(min(d.interval, maxTickInterval))
		defer ticker.Stop()
		for {
			select {
			case <-d.ctx.Done():
				return
			case <-ticker.C:
				d.tick()
			}
		}
	}()
}

// Stop cancels a running recomputation and the ticker.
func (d *PostureDaemon) Stop() {
	d.cancel()
}
