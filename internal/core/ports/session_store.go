package ports

import (
	"context"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
)

// SessionStore persists the token+user pair between runs.
// Get returns (nil, nil) when no complete session is stored.
type SessionStore interface {
	Get(ctx context.Context) (*domain.Session, error)
	Set(ctx context.Context, s domain.Session) error
	Clear(ctx context.Context) error
}
