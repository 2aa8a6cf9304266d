package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
)

// Register creates an account and, on success, persists the returned session.
func (c *Client) Register(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error) {
	cl := call{
		op:       "register",
		kind:     domain.ErrAuth,
		method:   http.MethodPost,
		endpoint: c.endpoints.Auth,
		query:    url.Values{"action": {"register"}},
		body:     in,
		fallback: "Registration failed",
	}
	return c.authenticate(ctx, cl, in)
}

// Login exchanges credentials for a session and persists it.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	in := domain.LoginInput{Email: email, Password: password}
	cl := call{
		op:       "login",
		kind:     domain.ErrAuth,
		method:   http.MethodPost,
		endpoint: c.endpoints.Auth,
		query:    url.Values{"action": {"login"}},
		body:     in,
		fallback: "Login failed",
	}
	return c.authenticate(ctx, cl, in)
}

func (c *Client) authenticate(ctx context.Context, cl call, in any) (*domain.AuthResult, error) {
	if err := c.checkInput(cl, in); err != nil {
		return nil, err
	}

	var res domain.AuthResult
	if err := c.send(ctx, cl, &res); err != nil {
		return nil, err
	}

	if err := c.store.Set(ctx, domain.Session{Token: res.Token, User: res.User}); err != nil {
		return nil, &Error{Kind: domain.ErrAuth, Op: cl.op, Message: "failed to persist session", Err: err}
	}
	c.log.Info().Int64("user_id", res.User.ID).Str("role", res.User.Role).Msg("session started")
	return &res, nil
}

// Logout clears the persisted session. It makes no network call and never
// fails; a store error is only logged.
func (c *Client) Logout(ctx context.Context) {
	if err := c.store.Clear(ctx); err != nil {
		c.log.Error().Err(err).Msg("clear session")
		return
	}
	c.log.Info().Msg("session cleared")
}

// CurrentUser returns the persisted user, or nil when there is no session.
func (c *Client) CurrentUser(ctx context.Context) *domain.User {
	s := c.session(ctx)
	if s == nil {
		return nil
	}
	u := s.User
	return &u
}

// IsAuthenticated reports whether a token is persisted.
func (c *Client) IsAuthenticated(ctx context.Context) bool {
	return c.session(ctx) != nil
}

// IsAdmin reports whether the persisted user has the admin role. It is
// informational only; the client never gates calls on it.
func (c *Client) IsAdmin(ctx context.Context) bool {
	return c.CurrentUser(ctx).IsAdmin()
}

// VerifySession asks the auth endpoint whether the persisted token is still
// accepted. The local session is left untouched either way.
func (c *Client) VerifySession(ctx context.Context) (*domain.SessionCheck, error) {
	var res domain.SessionCheck
	err := c.send(ctx, call{
		op:       "verify_session",
		kind:     domain.ErrAuth,
		method:   http.MethodGet,
		endpoint: c.endpoints.Auth,
		auth:     true,
		fallback: "Session verification failed",
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// session reads the store, treating errors and half-written pairs as no
// session.
func (c *Client) session(ctx context.Context) *domain.Session {
	s, err := c.store.Get(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("read session")
		return nil
	}
	if !s.Valid() {
		return nil
	}
	return s
}
