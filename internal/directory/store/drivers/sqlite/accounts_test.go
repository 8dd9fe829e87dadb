package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/farrierlabs/accountd/internal/directory/domain"
	"github.com/farrierlabs/accountd/internal/directory/store"
	"github.com/farrierlabs/accountd/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedAccount(email, name string, role domain.Role) domain.Account {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return domain.Account{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		Name:         name,
		Role:         role,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestSqliteAccountsRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	a := seedAccount("alice@example.com", "Alice", domain.RoleUser)
	require.NoError(t, st.Accounts().CreateAccount(ctx, a))

	got, err := st.Accounts().GetAccountByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, a.ID, got.ID)
	require.Equal(t, a.Email, got.Email)
	require.Equal(t, a.PasswordHash, got.PasswordHash)
	require.Equal(t, a.Name, got.Name)
	require.Equal(t, a.Role, got.Role)
	require.Equal(t, a.Status, got.Status)
	require.WithinDuration(t, a.CreatedAt, got.CreatedAt, time.Second)
	require.Nil(t, got.LastLoginAt)

	got, err = st.Accounts().GetAccountByEmail(ctx, a.Email)
	require.NoError(t, err)
	require.Equal(t, a.ID, got.ID)
}

func TestSqliteAccountsConflictsAndMisses(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	a := seedAccount("bob@example.com", "Bob", domain.RoleUser)
	require.NoError(t, st.Accounts().CreateAccount(ctx, a))

	dup := seedAccount("bob@example.com", "Imposter", domain.RoleUser)
	require.ErrorIs(t, st.Accounts().CreateAccount(ctx, dup), store.ErrAlreadyExists)

	_, err := st.Accounts().GetAccountByID(ctx, "no-such-id")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Accounts().GetAccountByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Accounts().UpdateProfile(ctx, "no-such-id", domain.AccountPatch{}, time.Now())
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, st.Accounts().RecordLogin(ctx, "no-such-id", time.Now()), store.ErrNotFound)
	require.ErrorIs(t, st.Accounts().DeleteAccount(ctx, "no-such-id"), store.ErrNotFound)
}

func TestSqliteAccountsUpdateAndLogin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	a := seedAccount("carol@example.com", "Carol", domain.RoleUser)
	require.NoError(t, st.Accounts().CreateAccount(ctx, a))

	name := "Caroline"
	status := domain.StatusInactive
	at := time.Now().UTC().Truncate(time.Millisecond)
	updated, err := st.Accounts().UpdateProfile(ctx, a.ID, domain.AccountPatch{
		Name:   &name,
		Status: &status,
	}, at)
	require.NoError(t, err)
	require.Equal(t, "Caroline", updated.Name)
	require.Equal(t, domain.StatusInactive, updated.Status)
	require.Equal(t, domain.RoleUser, updated.Role, "role untouched by partial patch")

	loginAt := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, st.Accounts().RecordLogin(ctx, a.ID, loginAt))

	got, err := st.Accounts().GetAccountByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "Caroline", got.Name)
	require.NotNil(t, got.LastLoginAt)
	require.WithinDuration(t, loginAt, *got.LastLoginAt, time.Second)
}

func TestSqliteAccountsListAndStats(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	a := seedAccount("a@example.com", "Ann Major", domain.RoleUser)
	b := seedAccount("b@example.com", "Ben Minor", domain.RoleAdmin)
	c := seedAccount("c@example.com", "Cam Major", domain.RoleUser)
	c.Status = domain.StatusPending
	for _, acc := range []domain.Account{a, b, c} {
		require.NoError(t, st.Accounts().CreateAccount(ctx, acc))
	}

	t.Run("list follows id order", func(t *testing.T) {
		all, err := st.Accounts().ListAccounts(ctx, domain.AccountFilter{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		require.Equal(t, a.ID, all[0].ID)
		require.Equal(t, b.ID, all[1].ID)
		require.Equal(t, c.ID, all[2].ID)
	})

	t.Run("search and filters compose", func(t *testing.T) {
		majors, err := st.Accounts().ListAccounts(ctx, domain.AccountFilter{Search: "MAJOR"})
		require.NoError(t, err)
		require.Len(t, majors, 2)

		got, err := st.Accounts().ListAccounts(ctx, domain.AccountFilter{
			Search: "major",
			Status: domain.StatusPending,
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, c.ID, got[0].ID)

		got, err = st.Accounts().ListAccounts(ctx, domain.AccountFilter{Search: "b@example"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, b.ID, got[0].ID)

		got, err = st.Accounts().ListAccounts(ctx, domain.AccountFilter{Search: "zzz"})
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("stats aggregate in one query", func(t *testing.T) {
		stats, err := st.Accounts().Stats(ctx)
		require.NoError(t, err)
		require.Equal(t, domain.DirectoryStats{
			TotalAccounts:  3,
			ActiveAccounts: 2,
			Administrators: 1,
		}, stats)
	})

	t.Run("reset empties the table", func(t *testing.T) {
		require.NoError(t, st.Accounts().Reset(ctx))

		stats, err := st.Accounts().Stats(ctx)
		require.NoError(t, err)
		require.Equal(t, domain.DirectoryStats{}, stats)
	})
}
