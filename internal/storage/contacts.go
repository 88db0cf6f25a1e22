package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type pgContacts struct {
	db *sqlx.DB
}

func (r *pgContacts) Add(ctx context.Context, contact Contact) (int64, error) {
	createdAt := contact.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	var id int64
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO contacts (user_id, name, phone, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		contact.OwnerID, contact.Name, contact.Phone, createdAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert contact: %w", err)
	}
	return id, nil
}

func (r *pgContacts) ListByOwner(ctx context.Context, ownerID int64) ([]Contact, error) {
	var list []Contact
	err := r.db.SelectContext(ctx, &list,
		`SELECT id, user_id, name, phone, created_at FROM contacts WHERE user_id = $1 ORDER BY id`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return list, nil
}

func (r *pgContacts) UpdatePhone(ctx context.Context, id, ownerID int64, phone string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE contacts SET phone = $1 WHERE id = $2 AND user_id = $3`,
		phone, id, ownerID,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	return requireRow(res)
}

func (r *pgContacts) Delete(ctx context.Context, id, ownerID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM contacts WHERE id = $1 AND user_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return requireRow(res)
}

func (r *pgContacts) Count(ctx context.Context, ownerID int64) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM contacts WHERE user_id = $1`, ownerID); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return n, nil
}

// requireRow maps a zero-row exec result to ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func mapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
