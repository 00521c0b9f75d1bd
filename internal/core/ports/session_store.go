package ports

import "context"

// SessionStore persists the three session fields per browser session.
// Read of an unknown sid returns an empty map, not an error. Write replaces
// every stored field of the session.
type SessionStore interface {
	Read(ctx context.Context, sid string) (map[string]string, error)
	Write(ctx context.Context, sid string, fields map[string]string) error
	Clear(ctx context.Context, sid string) error
}
