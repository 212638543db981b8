//go:build integration

package testutil

import (
	"context"

	pgrepo "github.com/Gunvolt24/foodbot/internal/repo/postgres"
)

// Migrate — схема и сиды меню через тот же путь, что и при старте сервиса.
func (p *PGContainer) Migrate(ctx context.Context) error {
	return pgrepo.Migrate(ctx, p.Pool)
}
