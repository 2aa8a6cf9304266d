package domain

// Session is the token+user pair identifying an authenticated caller.
// Token and User are always persisted and cleared together.
type Session struct {
	Token string `json:"auth_token"`
	User  User   `json:"user"`
}

// Valid reports whether both halves of the pair are present.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.User.ID != 0
}

// AuthResult is the payload of a successful register or login call.
type AuthResult struct {
	Token string `json:"token" validate:"required"`
	User  User   `json:"user"`
}

// SessionCheck is returned by the auth endpoint when a token is verified.
type SessionCheck struct {
	Valid bool `json:"valid"`
	User  struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

// RegisterInput carries the fields required to open a new account.
type RegisterInput struct {
	Email    string `json:"email"     validate:"required"`
	Password string `json:"password"  validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone"     validate:"required"`
}

// LoginInput carries login credentials.
type LoginInput struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}
