package sqlite

import (
	"context"
	"time"

	"github.com/S13G/nestwash/internal/auth/domain"
)

const accountColumns = `id, email_address, password_hash, full_name, address, role, created_at, updated_at`

type accountsRepo struct {
	db dbtx
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
		`SELECT `+accountColumns+` FROM accounts WHERE email_address = ?`, email)

	a, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func (r *accountsRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM accounts WHERE email_address = ?)`, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (`+accountColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID,
		a.EmailAddress,
		mapStringNull(a.PasswordHash),
		mapStringNull(a.FullName),
		mapStringNull(a.Address),
		mapStringNull(a.Role.String()),
		a.CreatedAt,
		a.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *accountsRepo) CompleteRegistration(
	ctx context.Context,
	accountID string,
	passwordHash, fullName, address string,
	role domain.Role,
) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE accounts
		    SET password_hash = ?, full_name = ?, address = ?, role = ?, updated_at = ?
		  WHERE id = ?`,
		passwordHash,
		mapStringNull(fullName),
		mapStringNull(address),
		role.String(),
		time.Now().UTC(),
		accountID,
	)
	return err
}
