//go:build integration

package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	pgrepo "github.com/Gunvolt24/foodbot/internal/repo/postgres"
)

const postgresImage = "postgres:16-alpine"

// PGContainer — Postgres в контейнере и пул к нему (пул закрывается в stop).
type PGContainer struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	DSN       string
}

// StartPostgresTC — чистая база foodbot без миграций.
func StartPostgresTC(ctx context.Context) (*PGContainer, func(context.Context) error, error) {
	ctr, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase("foodbot"),
		postgres.WithUsername("app"),
		postgres.WithPassword("app"),
		tc.WithLifecycleHooks(lifecycleLog("postgres")),
		// строка готовности печатается дважды: после initdb и после рестарта
		tc.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run postgres: %w", err)
	}

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = ctr.Terminate(ctx)
		return nil, nil, fmt.Errorf("postgres dsn: %w", err)
	}

	// тот же конструктор пула, что и в сервисе
	pool, err := pgrepo.NewPool(ctx, dsn, pgrepo.PoolOptions{MaxConns: 5, AppName: "foodbot-tests"})
	if err != nil {
		_ = ctr.Terminate(ctx)
		return nil, nil, err
	}

	stop := func(c context.Context) error {
		pool.Close()
		return ctr.Terminate(c)
	}
	return &PGContainer{Container: ctr, Pool: pool, DSN: dsn}, stop, nil
}
