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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/l3montree-dev/postureguard/monitoring"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

// create a logger to log any errors to the error tracking
type sentryLogger struct {
	defaultLogger logger.Interface
}

func (s *sentryLogger) LogMode(level logger.LogLevel) logger.Interface {
	// return a new wrapper, the current one may be used concurrently
	var newDefault logger.Interface
	if s.defaultLogger != nil {
		newDefault = s.defaultLogger.LogMode(level)
	}
	return &sentryLogger{defaultLogger: newDefault}
}
func (s *sentryLogger) Info(ctx context.Context, msg string, data ...any) {
	s.defaultLogger.Info(ctx, msg, data...)
}
func (s *sentryLogger) Warn(ctx context.Context, msg string, data ...any) {
	s.alert(msg, data...)
	s.defaultLogger.Warn(ctx, msg, data...)
}
func (s *sentryLogger) Error(ctx context.Context, msg string, data ...any) {
	s.alert(msg, data...)
	s.defaultLogger.Error(ctx, msg, data...)
}

func (s *sentryLogger) alert(msg string, data ...any) {
	if len(data) > 0 {
		err, ok := data[0].(error)
		if ok {
			if isExpectedError(err) {
				return
			}
			monitoring.Alert(msg, err)
		} else {
			monitoring.Alert(msg, fmt.Errorf("%v", data[0]))
		}
	} else {
		monitoring.Alert(msg, nil)
	}
}

// not found and caller cancellations are part of the normal control flow
func isExpectedError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (s *sentryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if err != nil && !isExpectedError(err) {
		s.alert("Database error", err)
	}
	s.defaultLogger.Trace(ctx, begin, fc, err)
}

func NewPgxConnPool(cfg PoolConfig) *pgxpool.Pool {
	config, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		panic("could not parse pgx pool config")
	}
	config.MaxConnIdleTime = cfg.ConnMaxIdleTime
	config.MaxConnLifetime = cfg.ConnMaxLifetime
	config.MaxConns = cfg.MaxOpenConns
	config.MinConns = cfg.MinConns
	// spans for queries issued on the pool, exported only if a tracer provider is installed
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		panic(fmt.Sprintf("could not create pgx pool: %s", err))
	}

	slog.Info("Database connection pool configured",
		"maxOpenConns", cfg.MaxOpenConns,
		"connMaxLifetime", cfg.ConnMaxLifetime,
		"connMaxIdleTime", cfg.ConnMaxIdleTime,
	)

	return pool
}

// NewGormDB creates a GORM instance using an existing *pgxpool.Pool
func NewGormDB(existingPool *pgxpool.Pool) *gorm.DB {
	db := stdlib.OpenDBFromPool(existingPool)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{
		Logger: &sentryLogger{
			defaultLogger: logger.Default,
		},
	})
	if err != nil {
		panic(err)
	}

	// spans for every query, exported only if a tracer provider is installed
	if err := gormDB.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		panic(err)
	}

	return gormDB
}
