// Package memory is the default store driver: a process-local map guarded by
// a single mutex. One lock covers every repository method, so lookup-then-
// insert on signup and the read-modify-write update path cannot interleave.
package memory

import (
	"context"

	"github.com/farrierlabs/accountd/internal/directory/store"
)

type Store struct {
	accounts *accountsRepo
}

func NewStore() *Store {
	return &Store{accounts: newAccountsRepo()}
}

func (s *Store) Accounts() store.Accounts { return s.accounts }

// ApplyMigrations is a no-op; there is no schema.
func (s *Store) ApplyMigrations() error { return nil }

func (s *Store) Close() error { return nil }

func (s *Store) Ping(_ context.Context) error { return nil }
