package domain

import "strings"

// AccountFilter narrows a directory listing. All supplied criteria must
// match; zero values mean "no constraint".
type AccountFilter struct {
	Search string // case-insensitive substring over name OR email
	Status Status // exact match
	Role   Role   // exact match
}

// Matches reports whether the account satisfies every supplied criterion.
func (f AccountFilter) Matches(a Account) bool {
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.Role != "" && a.Role != f.Role {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(a.Name), needle) &&
			!strings.Contains(a.Email, needle) {
			return false
		}
	}
	return true
}

// AccountPatch enumerates the fields mutable through the admin update path.
// Anything else (email, password) is immutable here; nil means "leave
// unchanged".
type AccountPatch struct {
	Name   *string
	Role   *Role
	Status *Status
}

// IsZero reports whether the patch would change nothing.
func (p AccountPatch) IsZero() bool {
	return p.Name == nil && p.Role == nil && p.Status == nil
}

// DirectoryStats are aggregate counts over the full directory.
type DirectoryStats struct {
	TotalAccounts  int `json:"total_users"`
	ActiveAccounts int `json:"active_users"`
	Administrators int `json:"administrators"`
}
