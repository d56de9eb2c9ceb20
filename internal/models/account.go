// Package models defines the domain types shared by the session store,
// the table engine, and the CLI.
package models

import "time"

// Role classifies an account's privilege level.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Account is a durable registered identity. Email is the unique key and is
// compared case-sensitively. The password is stored as entered; credential
// hashing is intentionally absent here and tracked as a known weakness.
type Account struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is the projection of an authenticated Account that is held in
// memory and persisted for reload continuity. It never carries the password.
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// SessionOf builds the Session projection for an account.
func SessionOf(a Account) Session {
	return Session{Name: a.Name, Email: a.Email, Role: a.Role}
}
