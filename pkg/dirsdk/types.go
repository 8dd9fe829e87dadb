package dirsdk

import "time"

// AccountInfo is the sanitized account projection on the wire. There is no
// password field on purpose; the service never serializes hashes.
type AccountInfo struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

// SignupRequest creates a new account. Role is optional and defaults to
// "user".
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest verifies credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateAccountRequest is the admin-gated patch. Only these three fields are
// mutable; anything else in the request body (email, password, ...) is
// ignored by the decoder.
type UpdateAccountRequest struct {
	Name   *string `json:"name,omitempty"`
	Role   *string `json:"role,omitempty"`
	Status *string `json:"status,omitempty"`
}

// StatsResponse are the aggregate directory counts.
type StatsResponse struct {
	TotalUsers     int `json:"total_users"`
	ActiveUsers    int `json:"active_users"`
	Administrators int `json:"administrators"`
}

// ListAccountsQuery narrows GET /api/users. Zero values mean no filter.
type ListAccountsQuery struct {
	Search string
	Status string
	Role   string
}

// HealthResponse is returned by the health probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Store string `json:"store"`
}
