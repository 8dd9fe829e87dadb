package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/farrierlabs/accountd/internal/directory/domain"
	"github.com/farrierlabs/accountd/internal/directory/store"
)

const accountColumns = `id, email, password_hash, name, role, status, created_at, updated_at, last_login_at`

type accountsRepo struct {
	db *sql.DB
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	a, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email)
	a, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

// CreateAccount does the email lookup and insert inside one transaction so
// concurrent signups with the same address cannot both succeed. The UNIQUE
// index on email is the backstop.
func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var taken int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM accounts WHERE email = ?`, a.Email,
	).Scan(&taken); err != nil {
		return err
	}
	if taken > 0 {
		return store.ErrAlreadyExists
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO accounts (`+accountColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Email, a.PasswordHash, a.Name,
		string(a.Role), string(a.Status),
		a.CreatedAt, a.UpdatedAt, mapOptionalTime(a.LastLoginAt),
	)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *accountsRepo) UpdateProfile(
	ctx context.Context,
	id string,
	patch domain.AccountPatch,
	updatedAt time.Time,
) (domain.Account, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Account{}, err
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	a, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
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

	_, err = tx.ExecContext(ctx,
		`UPDATE accounts SET name = ?, role = ?, status = ?, updated_at = ? WHERE id = ?`,
		a.Name, string(a.Role), string(a.Status), a.UpdatedAt, id,
	)
	if err != nil {
		return domain.Account{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Account{}, err
	}
	return a, nil
}

func (r *accountsRepo) RecordLogin(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET last_login_at = ? WHERE id = ?`, at, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *accountsRepo) DeleteAccount(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ListAccounts orders by id ascending; ids are ULIDs so this is creation
// order.
func (r *accountsRepo) ListAccounts(
	ctx context.Context,
	f domain.AccountFilter,
) ([]domain.Account, error) {
	var (
		where []string
		args  []any
	)
	if f.Status != "" {
		where = append(where, `status = ?`)
		args = append(args, string(f.Status))
	}
	if f.Role != "" {
		where = append(where, `role = ?`)
		args = append(args, string(f.Role))
	}
	if f.Search != "" {
		where = append(where, `(instr(lower(name), ?) > 0 OR instr(email, ?) > 0)`)
		needle := strings.ToLower(f.Search)
		args = append(args, needle, needle)
	}

	query := `SELECT ` + accountColumns + ` FROM accounts`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *accountsRepo) Stats(ctx context.Context) (domain.DirectoryStats, error) {
	var s domain.DirectoryStats
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(1),
			COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN role = 'admin' THEN 1 ELSE 0 END), 0)
		FROM accounts`,
	).Scan(&s.TotalAccounts, &s.ActiveAccounts, &s.Administrators)
	return s, err
}

func (r *accountsRepo) Reset(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM accounts`)
	return err
}
