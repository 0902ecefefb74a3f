package integrationtestutil

import (
	"context"
	"log"
	"log/slog"

	"github.com/l3montree-dev/postureguard/database"
	"github.com/l3montree-dev/postureguard/shared"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// InitDatabaseContainer starts a postgres container, connects to it and runs the embedded migrations.
func InitDatabaseContainer() (shared.DB, func()) {
	ctx := context.Background()

	dbName := "postureguard"
	dbUser := "user"
	dbPassword := "password"

	postgresC, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)

	terminate := func() {
		if err := testcontainers.TerminateContainer(postgresC); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
	if err != nil {
		slog.Info("failed to start postgres container", "error", err)
		panic(err)
	}

	host, _ := postgresC.Host(ctx)
	port, _ := postgresC.MappedPort(ctx, "5432")

	pool := database.NewPgxConnPool(database.PoolConfig{
		User:            dbUser,
		Password:        dbPassword,
		Host:            host,
		Port:            port.Port(),
		DBName:          dbName,
		MaxOpenConns:    5,
		MinConns:        1,
		ConnMaxLifetime: database.GetPoolConfigFromEnv().ConnMaxLifetime,
		ConnMaxIdleTime: database.GetPoolConfigFromEnv().ConnMaxIdleTime,
	})
	db := database.NewGormDB(pool)

	if err := database.RunMigrationsWithDB(db); err != nil {
		log.Printf("failed to run migrations: %s", err)
		terminate()
		panic(err)
	}

	return db, func() {
		pool.Close()
		terminate()
	}
}
