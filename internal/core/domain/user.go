package domain

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User is the profile the auth endpoint returns alongside a token.
// Only the server can change it; the client stores it verbatim.
type User struct {
	ID       int64  `json:"id"        bson:"id"        validate:"required"`
	Email    string `json:"email"     bson:"email"     validate:"required"`
	FullName string `json:"full_name" bson:"full_name"`
	Phone    string `json:"phone"     bson:"phone"`
	Role     string `json:"role"      bson:"role"      validate:"required,oneof=client admin"`
}

// IsAdmin reports whether the server granted the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
