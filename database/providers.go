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

package database

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/postureguard/shared"
	"go.uber.org/fx"
)

func providePgxConnPool(lc fx.Lifecycle, cfg PoolConfig) *pgxpool.Pool {
	pool := NewPgxConnPool(cfg)
	lc.Append(fx.StopHook(pool.Close))
	return pool
}

func provideBroker(lc fx.Lifecycle, pool *pgxpool.Pool) (shared.PubSubBroker, error) {
	broker, err := NewPostgreSQLBroker(pool)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(broker.Close))
	return broker, nil
}

// Module expects a PoolConfig to be supplied.
var Module = fx.Options(
	fx.Provide(providePgxConnPool),
	fx.Provide(NewGormDB),
	fx.Provide(provideBroker),
)
