package store

import (
	"context"
	"errors"
	"time"

	"github.com/farrierlabs/accountd/internal/directory/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (memory, sqlite)
// implement this. Every repository method is atomic within the driver: the
// memory driver serializes under a single mutex and the sqlite driver relies
// on statement-level transactions, which is what keeps the email uniqueness
// invariant safe against concurrent signups.
type Store interface {
	Accounts() Accounts

	// ApplyMigrations brings the backing schema up to date. A no-op for
	// drivers without a schema.
	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}

type Accounts interface {
	// GetAccountByID returns an account by id, ErrNotFound if absent.
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)

	// GetAccountByEmail looks up by normalized email. Callers must
	// normalize first; drivers match exactly on the stored key.
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)

	// CreateAccount inserts a new account (id is provided by the app via
	// ULID). Returns ErrAlreadyExists when the normalized email is taken;
	// the check-and-insert is atomic.
	CreateAccount(ctx context.Context, a domain.Account) error

	// UpdateProfile applies the allow-listed patch fields and sets
	// updated_at, returning the resulting account. The read-modify-write
	// happens inside the driver.
	UpdateProfile(ctx context.Context, id string, patch domain.AccountPatch, updatedAt time.Time) (domain.Account, error)

	// RecordLogin stamps last_login_at after a successful credential check.
	RecordLogin(ctx context.Context, id string, at time.Time) error

	// DeleteAccount removes an account permanently.
	DeleteAccount(ctx context.Context, id string) error

	// ListAccounts returns accounts matching the filter in creation order
	// (ascending id; ids are ULIDs so this is stable and time-ordered).
	ListAccounts(ctx context.Context, f domain.AccountFilter) ([]domain.Account, error)

	// Stats counts over the whole directory.
	Stats(ctx context.Context) (domain.DirectoryStats, error)

	// Reset clears all accounts. Test-harness hook, not part of the
	// production contract.
	Reset(ctx context.Context) error
}
