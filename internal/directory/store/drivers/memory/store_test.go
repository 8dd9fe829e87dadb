package memory

import (
	"context"
	"testing"
	"time"

	"github.com/farrierlabs/accountd/internal/directory/domain"
	"github.com/farrierlabs/accountd/internal/directory/store"
	"github.com/farrierlabs/accountd/pkg/idx"
	"github.com/stretchr/testify/require"
)

func testAccount(email, name string, role domain.Role) domain.Account {
	now := time.Now().UTC()
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

func TestAccountsCRUD(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := NewStore()
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(ctx))

	a := testAccount("alice@example.com", "Alice", domain.RoleUser)
	require.NoError(t, st.Accounts().CreateAccount(ctx, a))

	t.Run("lookup by id and email", func(t *testing.T) {
		got, err := st.Accounts().GetAccountByID(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, a, got)

		got, err = st.Accounts().GetAccountByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, a.ID, got.ID)
	})

	t.Run("missing rows map to ErrNotFound", func(t *testing.T) {
		_, err := st.Accounts().GetAccountByID(ctx, "no-such-id")
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = st.Accounts().GetAccountByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = st.Accounts().UpdateProfile(ctx, "no-such-id", domain.AccountPatch{}, time.Now())
		require.ErrorIs(t, err, store.ErrNotFound)

		require.ErrorIs(t, st.Accounts().RecordLogin(ctx, "no-such-id", time.Now()), store.ErrNotFound)
		require.ErrorIs(t, st.Accounts().DeleteAccount(ctx, "no-such-id"), store.ErrNotFound)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		dup := testAccount("alice@example.com", "Imposter", domain.RoleUser)
		require.ErrorIs(t, st.Accounts().CreateAccount(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("update patches only the given fields", func(t *testing.T) {
		name := "Alice B"
		at := time.Now().UTC()
		got, err := st.Accounts().UpdateProfile(ctx, a.ID, domain.AccountPatch{Name: &name}, at)
		require.NoError(t, err)
		require.Equal(t, "Alice B", got.Name)
		require.Equal(t, a.Role, got.Role)
		require.Equal(t, a.Status, got.Status)
		require.Equal(t, at, got.UpdatedAt)
	})

	t.Run("record login stamps the timestamp", func(t *testing.T) {
		at := time.Now().UTC()
		require.NoError(t, st.Accounts().RecordLogin(ctx, a.ID, at))

		got, err := st.Accounts().GetAccountByID(ctx, a.ID)
		require.NoError(t, err)
		require.NotNil(t, got.LastLoginAt)
		require.Equal(t, at, *got.LastLoginAt)
	})

	t.Run("delete frees id and email", func(t *testing.T) {
		require.NoError(t, st.Accounts().DeleteAccount(ctx, a.ID))

		_, err := st.Accounts().GetAccountByID(ctx, a.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		// The email can be reused once the row is gone.
		again := testAccount("alice@example.com", "Alice Again", domain.RoleUser)
		require.NoError(t, st.Accounts().CreateAccount(ctx, again))
	})
}

func TestAccountsListOrderAndFilter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := NewStore()
	t.Cleanup(func() { _ = st.Close() })

	a := testAccount("a@example.com", "Ann", domain.RoleUser)
	b := testAccount("b@example.com", "Ben", domain.RoleAdmin)
	c := testAccount("c@example.com", "Cam", domain.RoleUser)
	c.Status = domain.StatusInactive
	for _, acc := range []domain.Account{a, b, c} {
		require.NoError(t, st.Accounts().CreateAccount(ctx, acc))
	}

	t.Run("creation order survives deletion", func(t *testing.T) {
		all, err := st.Accounts().ListAccounts(ctx, domain.AccountFilter{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		require.Equal(t, a.ID, all[0].ID)
		require.Equal(t, b.ID, all[1].ID)
		require.Equal(t, c.ID, all[2].ID)

		require.NoError(t, st.Accounts().DeleteAccount(ctx, b.ID))

		all, err = st.Accounts().ListAccounts(ctx, domain.AccountFilter{})
		require.NoError(t, err)
		require.Len(t, all, 2)
		require.Equal(t, a.ID, all[0].ID)
		require.Equal(t, c.ID, all[1].ID)

		require.NoError(t, st.Accounts().CreateAccount(ctx, b))
	})

	t.Run("filters narrow the result", func(t *testing.T) {
		admins, err := st.Accounts().ListAccounts(ctx, domain.AccountFilter{Role: domain.RoleAdmin})
		require.NoError(t, err)
		require.Len(t, admins, 1)
		require.Equal(t, b.ID, admins[0].ID)

		inactive, err := st.Accounts().ListAccounts(ctx, domain.AccountFilter{Status: domain.StatusInactive})
		require.NoError(t, err)
		require.Len(t, inactive, 1)
		require.Equal(t, c.ID, inactive[0].ID)
	})
}

func TestAccountsStatsAndReset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := NewStore()
	t.Cleanup(func() { _ = st.Close() })

	stats, err := st.Accounts().Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.DirectoryStats{}, stats)

	admin := testAccount("a@example.com", "Admin", domain.RoleAdmin)
	user := testAccount("u@example.com", "User", domain.RoleUser)
	pending := testAccount("p@example.com", "Pending", domain.RoleUser)
	pending.Status = domain.StatusPending
	for _, acc := range []domain.Account{admin, user, pending} {
		require.NoError(t, st.Accounts().CreateAccount(ctx, acc))
	}

	stats, err = st.Accounts().Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.DirectoryStats{
		TotalAccounts:  3,
		ActiveAccounts: 2,
		Administrators: 1,
	}, stats)

	require.NoError(t, st.Accounts().Reset(ctx))

	stats, err = st.Accounts().Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.DirectoryStats{}, stats)

	all, err := st.Accounts().ListAccounts(ctx, domain.AccountFilter{})
	require.NoError(t, err)
	require.Empty(t, all)
}
