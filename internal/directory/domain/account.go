package domain

import (
	"strings"
	"time"
)

// Role classifies what an account is allowed to do. There are only two
// levels; anything finer-grained belongs in a future scopes model.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the recognised roles.
func (r Role) Valid() bool { return r == RoleUser || r == RoleAdmin }

// Status is a flat classification of an account. There are no enforced
// transitions between statuses; admins may set any value.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

// Valid reports whether s is one of the recognised statuses.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive || s == StatusPending
}

// Account is a user identity record. PasswordHash is internal state and must
// never leave the service layer; Sanitized strips it before anything is
// returned to a caller.
type Account struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"` // normalized: lower-cased, trimmed
	PasswordHash string     `json:"-"`     // argon2id PHC encoded
	Name         string     `json:"name"`
	Role         Role       `json:"role"`
	Status       Status     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastLoginAt  *time.Time `json:"last_login_at"` // nil until first successful login
}

// Sanitized returns a copy of the account safe to hand to any caller.
func (a Account) Sanitized() Account {
	a.PasswordHash = ""
	return a
}

// NormalizeEmail canonicalises an email address for storage and lookup.
// Two inputs differing only in case or surrounding whitespace refer to the
// same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
