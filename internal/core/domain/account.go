package domain

import "time"

// Account is a registered user as held by the stand-in backend.
type Account struct {
	User
	PasswordHash string
	CreatedAt    time.Time
}

// Actor is the caller identified from a bearer token. A nil *Actor is a guest.
type Actor struct {
	UserID int64
	Email  string
	Role   string
}

func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}

// Owns reports whether the actor may see or cancel a booking owned by userID.
// Admins own everything.
func (a *Actor) Owns(userID int64) bool {
	if a == nil {
		return false
	}
	return a.IsAdmin() || (userID != 0 && a.UserID == userID)
}
