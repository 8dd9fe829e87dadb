package domain

// Actor is the verified identity of the caller attempting an operation.
// The HTTP layer builds it from trusted identity headers; a production
// deployment would derive it from a validated token instead.
type Actor struct {
	ID   string
	Role Role
}

// IsAdmin reports whether the actor may perform admin-gated mutations.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
