package ports

import (
	"context"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
)

// UserRepository persists accounts of the stand-in backend.
// Emails are unique; Create assigns the ID and fails with domain.ErrUserExists
// on a duplicate email. FindByEmail returns domain.ErrInvalidCredentials when
// no account matches so login does not leak which emails exist.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, acc domain.Account) (*domain.Account, error)
}
