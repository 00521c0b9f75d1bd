package ports

import (
	"context"

	"github.com/bloodchain/portal/internal/core/domain"
)

// FixtureSource supplies the seed data new workspaces are built from.
type FixtureSource interface {
	Load(ctx context.Context) (domain.Fixtures, error)
}
