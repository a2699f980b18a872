package models

import "time"

// Role is the coarse authorization tier of a user.
type Role string

const (
	RoleStandard Role = "standard"
	RoleAdmin    Role = "admin"
)

// AdminEmail is the literal login that is granted the admin role at
// registration. Any other email gets RoleStandard.
// TODO: replace with an explicit role-assignment mechanism (first-user
// bootstrap or an admin console) before this runs anywhere real.
const AdminEmail = "admin"

// User is the full internal user record. PasswordHash must never leave the
// process; use PublicView for anything caller-facing.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the subset of a user record that is safe to return to any
// caller.
type PublicUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// PublicView returns the caller-safe projection of the user.
func (u *User) PublicView() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// RoleForEmail returns the role a registrant with the given email receives.
func RoleForEmail(email string) Role {
	if email == AdminEmail {
		return RoleAdmin
	}
	return RoleStandard
}
