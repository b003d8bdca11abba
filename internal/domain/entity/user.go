package entity

import "time"

// Valid roles for User.
const (
	RoleOwner      = "owner"
	RoleSupervisor = "supervisor"
)

// User is an account of the shop application.
// Username is stored lowercase; login lookups are case-insensitive.
type User struct {
	ID           string
	Name         string
	Username     string
	PasswordHash string // bcrypt hash, never plaintext once persisted
	Role         string // owner, supervisor
	AvatarURL    string // optional profile picture reference
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
