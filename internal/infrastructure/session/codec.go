// Package session holds the local session stores and the codec shared by
// every backend. A session is persisted as two keyed entries, the opaque
// token under TokenKey and the JSON-serialized user under UserKey.
package session

import (
	"encoding/json"
	"fmt"

	"github.com/abkhaztransfer/transfer-client/internal/core/domain"
)

const (
	TokenKey = "auth_token"
	UserKey  = "user"
)

// Encode splits a session into its two persisted entries.
func Encode(s domain.Session) (token, user string, err error) {
	b, err := json.Marshal(s.User)
	if err != nil {
		return "", "", fmt.Errorf("encode user: %w", err)
	}
	return s.Token, string(b), nil
}

// Decode rebuilds a session from its two entries. A missing half yields
// (nil, nil): token and user only count together.
func Decode(token, user string) (*domain.Session, error) {
	if token == "" || user == "" {
		return nil, nil
	}
	var u domain.User
	if err := json.Unmarshal([]byte(user), &u); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &domain.Session{Token: token, User: u}, nil
}
