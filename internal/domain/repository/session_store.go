package repository

import (
	"context"
	"time"
)

// SessionStore records issued token IDs so bearer tokens can be revoked
// before their cryptographic expiry. Keys live at most as long as the
// role-scoped token lifetime.
type SessionStore interface {
	Put(ctx context.Context, role string, subjectID string, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, role string, subjectID string, tokenID string) (bool, error)
	Delete(ctx context.Context, role string, subjectID string, tokenID string) error
}
