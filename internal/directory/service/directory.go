package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/farrierlabs/accountd/internal/directory/domain"
	"github.com/farrierlabs/accountd/internal/directory/store"
	"github.com/farrierlabs/accountd/pkg/cryptox"
	"github.com/farrierlabs/accountd/pkg/idx"
	"github.com/farrierlabs/accountd/pkg/slogx"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DirectoryService owns all account operations. It holds no state of its own;
// everything lives in the injected Store, so tests get isolation by handing
// each run a fresh store instance.
type DirectoryService struct {
	Store store.Store
}

// SignupInput is the payload for account creation. Role is optional and
// defaults to "user".
type SignupInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Name     string `validate:"required"`
	Role     string `validate:"omitempty,oneof=user admin"`
}

// Signup validates the input, hashes the password and stores a new account.
// Emails are normalized before the uniqueness check; a duplicate yields
// ErrEmailTaken. The returned account is sanitized.
func (s *DirectoryService) Signup(ctx context.Context, in SignupInput) (domain.Account, error) {
	l := slogx.FromContext(ctx)

	in.Email = domain.NormalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	if err := validate.Struct(in); err != nil {
		return domain.Account{}, newValidationError(err)
	}

	role := domain.Role(in.Role)
	if role == "" {
		role = domain.RoleUser
	}

	// The account does not exist until the hash resolves; the plaintext is
	// dropped here.
	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		l.Error("failed to hash password", "error", err)
		return domain.Account{}, err
	}

	now := time.Now().UTC()
	account := domain.Account{
		ID:           idx.New().String(),
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		Role:         role,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Accounts().CreateAccount(ctx, account); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Account{}, ErrEmailTaken
		}
		l.Error("failed to create account", "error", err)
		return domain.Account{}, err
	}

	l.Info("account created", "account_id", account.ID, "role", string(role))
	return account.Sanitized(), nil
}

// Login verifies credentials against the stored hash. A missing account and
// a wrong password are indistinguishable to the caller (ok=false, nil error)
// so this path cannot be used to enumerate users. On success the login
// timestamp is recorded and the sanitized account returned.
func (s *DirectoryService) Login(
	ctx context.Context,
	email, password string,
) (domain.Account, bool, error) {
	l := slogx.FromContext(ctx)

	account, err := s.Store.Accounts().GetAccountByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, false, nil
		}
		return domain.Account{}, false, err
	}

	if err := cryptox.VerifyPassword(password, account.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return domain.Account{}, false, nil
		}
		// Malformed stored hash; surface it rather than report bad
		// credentials.
		l.Error("password verification failed", "error", err, "account_id", account.ID)
		return domain.Account{}, false, err
	}

	now := time.Now().UTC()
	if err := s.Store.Accounts().RecordLogin(ctx, account.ID, now); err != nil {
		return domain.Account{}, false, err
	}
	account.LastLoginAt = &now

	l.Info("login verified", "account_id", account.ID)
	return account.Sanitized(), true, nil
}

// Account returns the sanitized account with the given id.
func (s *DirectoryService) Account(ctx context.Context, id string) (domain.Account, error) {
	account, err := s.Store.Accounts().GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrAccountNotFound
		}
		return domain.Account{}, err
	}
	return account.Sanitized(), nil
}

// List returns sanitized accounts matching the filter, in creation order.
func (s *DirectoryService) List(
	ctx context.Context,
	f domain.AccountFilter,
) ([]domain.Account, error) {
	accounts, err := s.Store.Accounts().ListAccounts(ctx, f)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		accounts[i] = accounts[i].Sanitized()
	}
	return accounts, nil
}

// Stats returns aggregate counts over the whole directory.
func (s *DirectoryService) Stats(ctx context.Context) (domain.DirectoryStats, error) {
	return s.Store.Accounts().Stats(ctx)
}

// Update applies an admin-gated patch. The authorization check runs before
// the existence check, so a non-admin probing a random id learns nothing
// beyond "not allowed". Only name, role and status are mutable.
func (s *DirectoryService) Update(
	ctx context.Context,
	id string,
	patch domain.AccountPatch,
	actor domain.Actor,
) (domain.Account, error) {
	l := slogx.FromContext(ctx)

	if !actor.IsAdmin() {
		l.Warn("update denied", "actor_id", actor.ID, "account_id", id)
		return domain.Account{}, ErrNotAdmin
	}

	if patch.Role != nil && !patch.Role.Valid() {
		return domain.Account{}, &ValidationError{Fields: map[string]string{
			"role": "must be one of: user admin",
		}}
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return domain.Account{}, &ValidationError{Fields: map[string]string{
			"status": "must be one of: active inactive pending",
		}}
	}

	account, err := s.Store.Accounts().UpdateProfile(ctx, id, patch, time.Now().UTC())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrAccountNotFound
		}
		l.Error("failed to update account", "error", err, "account_id", id)
		return domain.Account{}, err
	}

	l.Info("account updated", "account_id", id, "actor_id", actor.ID)
	return account.Sanitized(), nil
}

// Delete removes an account permanently. Same authorization contract and
// check ordering as Update.
func (s *DirectoryService) Delete(ctx context.Context, id string, actor domain.Actor) error {
	l := slogx.FromContext(ctx)

	if !actor.IsAdmin() {
		l.Warn("delete denied", "actor_id", actor.ID, "account_id", id)
		return ErrNotAdmin
	}

	if err := s.Store.Accounts().DeleteAccount(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		l.Error("failed to delete account", "error", err, "account_id", id)
		return err
	}

	l.Info("account deleted", "account_id", id, "actor_id", actor.ID)
	return nil
}

// Reset clears the directory. Test-harness hook only.
func (s *DirectoryService) Reset(ctx context.Context) error {
	return s.Store.Accounts().Reset(ctx)
}
