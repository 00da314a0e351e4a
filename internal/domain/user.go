package domain

import "time"

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RolePersonal Role = "personal"
	RoleStudent  Role = "student"
)

// User represents an authenticated user (either a Personal trainer or a Student).
// The login layer fabricates this record; it is persisted as the single
// user-session entry in local storage.
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Role         Role      `bson:"role" json:"role"`
	AvatarURL    string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

func (u *User) IsPersonal() bool {
	return u.Role == RolePersonal
}

func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}
