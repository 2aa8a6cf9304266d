package memory

import (
	"context"
	"sync"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
	"github.com/abkhaztransfer/transfer-client/internal/core/ports"
)

// UserRepository keeps accounts keyed by email.
type UserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]domain.Account
	next    int64
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{byEmail: make(map[string]domain.Account)}
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acc, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return &acc, nil
}

func (r *UserRepository) Create(_ context.Context, acc domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[acc.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.next++
	acc.ID = r.next
	r.byEmail[acc.Email] = acc
	return &acc, nil
}
