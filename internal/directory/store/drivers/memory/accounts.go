package memory

import (
	"context"
	"sync"
	"time"

	"github.com/farrierlabs/accountd/internal/directory/domain"
	"github.com/farrierlabs/accountd/internal/directory/store"
)

type accountsRepo struct {
	mu      sync.RWMutex
	byID    map[string]domain.Account
	byEmail map[string]string // normalized email -> id
	order   []string          // ids in creation order
}

func newAccountsRepo() *accountsRepo {
	return &accountsRepo{
		byID:    make(map[string]domain.Account),
		byEmail: make(map[string]string),
	}
}

func (r *accountsRepo) GetAccountByID(_ context.Context, id string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return domain.Account{}, store.ErrNotFound
	}
	return a, nil
}

func (r *accountsRepo) GetAccountByEmail(_ context.Context, email string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return domain.Account{}, store.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *accountsRepo) CreateAccount(_ context.Context, a domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[a.Email]; taken {
		return store.ErrAlreadyExists
	}

	r.byID[a.ID] = a
	r.byEmail[a.Email] = a.ID
	r.order = append(r.order, a.ID)
	return nil
}

func (r *accountsRepo) UpdateProfile(
	_ context.Context,
	id string,
	patch domain.AccountPatch,
	updatedAt time.Time,
) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return domain.Account{}, store.ErrNotFound
	}

	if patch.Name != nil {
		a.Name = *patch.Name
	}
	if patch.Role != nil {
		a.Role = *patch.Role
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	a.UpdatedAt = updatedAt

	r.byID[id] = a
	return a, nil
}

func (r *accountsRepo) RecordLogin(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return store.ErrNotFound
	}
	a.LastLoginAt = &at
	r.byID[id] = a
	return nil
}

func (r *accountsRepo) DeleteAccount(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return store.ErrNotFound
	}

	delete(r.byID, id)
	delete(r.byEmail, a.Email)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *accountsRepo) ListAccounts(
	_ context.Context,
	f domain.AccountFilter,
) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Account, 0, len(r.order))
	for _, id := range r.order {
		if a := r.byID[id]; f.Matches(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *accountsRepo) Stats(_ context.Context) (domain.DirectoryStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var s domain.DirectoryStats
	for _, a := range r.byID {
		s.TotalAccounts++
		if a.Status == domain.StatusActive {
			s.ActiveAccounts++
		}
		if a.Role == domain.RoleAdmin {
			s.Administrators++
		}
	}
	return s, nil
}

func (r *accountsRepo) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[string]domain.Account)
	r.byEmail = make(map[string]string)
	r.order = nil
	return nil
}
