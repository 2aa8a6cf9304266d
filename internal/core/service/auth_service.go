package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
	"github.com/abkhaztransfer/transfer-client/internal/core/ports"
)

const (
	defaultTokenTTL   = 30 * 24 * time.Hour
	minPasswordLength = 6
)

// AuthService implements registration, login and token verification.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	now       func() time.Time
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, now: time.Now}
}

// Register opens a client account and logs it in. The role is always client.
func (s *AuthService) Register(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" || strings.TrimSpace(in.FullName) == "" || strings.TrimSpace(in.Phone) == "" {
		return nil, domain.ErrMissingFields
	}
	if len(in.Password) < minPasswordLength {
		return nil, domain.ErrWeakPassword
	}
	return s.create(ctx, domain.User{
		Email:    email,
		FullName: strings.TrimSpace(in.FullName),
		Phone:    strings.TrimSpace(in.Phone),
		Role:     domain.RoleClient,
	}, in.Password)
}

func (s *AuthService) Login(ctx context.Context, in domain.LoginInput) (*domain.AuthResult, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrMissingFields
	}

	acc, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return s.issue(acc.User)
}

// Verify checks a bearer token and echoes the identity it carries.
func (s *AuthService) Verify(_ context.Context, token string) (*domain.SessionCheck, error) {
	claims, err := ParseToken(s.jwtSecret, token)
	if err != nil {
		return nil, err
	}
	check := &domain.SessionCheck{Valid: true}
	check.User.ID = claims.UserID
	check.User.Email = claims.Email
	check.User.Role = claims.Role
	return check, nil
}

// EnsureAdmin creates the admin account unless the email is already taken.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	_, err := s.create(ctx, domain.User{
		Email:    normalizeEmail(email),
		FullName: "Administrator",
		Role:     domain.RoleAdmin,
	}, password)
	if errors.Is(err, domain.ErrUserExists) {
		return nil
	}
	return err
}

func (s *AuthService) create(ctx context.Context, u domain.User, password string) (*domain.AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	acc, err := s.repo.Create(ctx, domain.Account{
		User:         u,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return s.issue(acc.User)
}

func (s *AuthService) issue(u domain.User) (*domain.AuthResult, error) {
	token, err := IssueToken(s.jwtSecret, u, s.tokenTTL, s.now())
	if err != nil {
		return nil, err
	}
	return &domain.AuthResult{Token: token, User: u}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
