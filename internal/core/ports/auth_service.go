package ports

import (
	"context"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error)
	Login(ctx context.Context, in domain.LoginInput) (*domain.AuthResult, error)
	Verify(ctx context.Context, token string) (*domain.SessionCheck, error)
}
