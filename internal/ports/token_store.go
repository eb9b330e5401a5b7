package ports

import "context"

// TokenStore is the single durable slot holding the session token across
// process restarts.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
