package ports

import (
	"context"

	"github.com/bloodchain/portal/internal/core/domain"
)

// WorkspaceStore hands out the per-session page state.
type WorkspaceStore interface {
	// Update runs fn with exclusive access to the session's workspace, creating
	// it from the fixtures on first use. fn's error is returned unchanged.
	Update(ctx context.Context, sid string, fn func(ws *domain.Workspace) error) error

	// Drop discards the session's workspace. Dropping an unknown sid is a no-op.
	Drop(ctx context.Context, sid string) error
}
