package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	PassHash  []byte    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsAdmin(u *User) bool {
	return u.Role == RoleAdmin
}

// CanEdit reports whether the actor may mutate a resource owned by ownerID.
func CanEdit(actor *User, ownerID string) bool {
	return IsAdmin(actor) || actor.ID == ownerID
}
