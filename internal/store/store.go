package store

import (
	"context"
	"errors"

	"github.com/linguaplay/practice-service/internal/models"
)

// ErrNotFound is returned when a session id has no stored state, either
// because it never existed or because it expired.
var ErrNotFound = errors.New("session not found")

// SessionStore persists session state between requests. Implementations
// must be safe for concurrent use.
type SessionStore interface {
	Save(ctx context.Context, state *models.SessionState) error
	Get(ctx context.Context, id string) (*models.SessionState, error)
	Delete(ctx context.Context, id string) error
}
