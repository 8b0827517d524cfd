package session

import (
	"context"
	"time"

	"github.com/shiftlog/portal-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// Store is the process-wide session record every other portal component
// reads. It is durable on the local device (survives restarts) but never
// shared across devices — bootstrapping from the backend on every
// navigation was deliberately traded away for a local read.
//
// Verifiers must never write fields one by one mid-verification: the full
// field set is composed first and committed through SetAll in a single
// transaction, so a failed verification leaves the record untouched.
type Store interface {
	// Set writes a single field.
	Set(ctx context.Context, key models.SessionKey, value string) error

	// Get reads a field. The second return reports presence; an absent
	// key is not an error.
	Get(ctx context.Context, key models.SessionKey) (string, bool, error)

	// GetOr reads a field, substituting fallback when the key is absent.
	GetOr(ctx context.Context, key models.SessionKey, fallback string) (string, error)

	// SetAll writes the given fields atomically: either every key is
	// committed or none is.
	SetAll(ctx context.Context, fields map[models.SessionKey]string) error

	// Clear removes the named keys. Removing an absent key is a no-op.
	Clear(ctx context.Context, keys ...models.SessionKey) error

	// ClearAll removes every key of the enumerated namespace plus the
	// fixed legacy-alias list. Idempotent.
	ClearAll(ctx context.Context) error

	// Prune deletes fields not touched for olderThan and returns how
	// many rows were removed. Used by the session janitor worker.
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
}
