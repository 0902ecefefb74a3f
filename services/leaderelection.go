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
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/pkg/errors"
)

const (
	leaderElectionKey = "leaderElection"
	// a leader which did not ping for this long is considered dead
	leaderTimeout = 360 * time.Second
)

type leaderElectionConfig struct {
	LeaderID string `json:"leaderId"`
	LastPing int64  `json:"lastPing"`
}

type databaseLeaderElector struct {
	leaderElectorID string
	configService   shared.ConfigService
	isLeader        atomic.Bool // updated by the daemon goroutine
	now             func() time.Time
}

func newDatabaseLeaderElector(configService shared.ConfigService) *databaseLeaderElector {
	return &databaseLeaderElector{
		configService:   configService,
		leaderElectorID: uuid.New().String(),
		now:             time.Now,
	}
}

// NewDatabaseLeaderElector elects one leader among all instances sharing the database.
// The election runs until ctx is done.
func NewDatabaseLeaderElector(ctx context.Context, configService shared.ConfigService) *databaseLeaderElector {
	leaderElector := newDatabaseLeaderElector(configService)
	go leaderElector.daemon(ctx)
	return leaderElector
}

func randomNumberBetween(min, max int) int {
	return rand.Intn(max-min) + min // #nosec
}

func (e *databaseLeaderElector) daemon(ctx context.Context) {
	for {
		isLeader, err := e.checkIfLeader()
		if err != nil {
			slog.Error("could not check if leader", "err", err)
		}
		e.isLeader.Store(isLeader)

		select {
		case <-ctx.Done():
			e.isLeader.Store(false)
			return
		case <-time.After(time.Duration(randomNumberBetween(60, 359)) * time.Second):
		}
	}
}

func (e *databaseLeaderElector) IsLeader() bool {
	return e.isLeader.Load()
}

func (e *databaseLeaderElector) makeLeader() error {
	return e.configService.SetJSONConfig(leaderElectionKey, leaderElectionConfig{
		LeaderID: e.leaderElectorID,
		LastPing: e.now().Unix(),
	})
}

func (e *databaseLeaderElector) checkIfLeader() (bool, error) {
	var config leaderElectionConfig

	err := e.configService.GetJSONConfig(leaderElectionKey, &config)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return false, err
		}
		// there is no leader yet
		return e.claim()
	}

	if config.LeaderID == e.leaderElectorID {
		// keep the ping fresh
		return e.claim()
	}

	if e.now().Unix()-config.LastPing > int64(leaderTimeout.Seconds()) {
		slog.Info("leader did not ping, taking over", "previousLeader", config.LeaderID)
		return e.claim()
	}

	return false, nil
}

func (e *databaseLeaderElector) claim() (bool, error) {
	if err := e.makeLeader(); err != nil {
		return false, err
	}
	return true, nil
}
