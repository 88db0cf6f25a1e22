package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// pgMedia serves both the files and images tables; the schemas are identical.
type pgMedia struct {
	db    *sqlx.DB
	table string
}

func (r *pgMedia) Save(ctx context.Context, item MediaItem) (int64, error) {
	var id int64
	query := fmt.Sprintf(
		`INSERT INTO %s (user_id, tg_file_id, name, folder_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		r.table,
	)
	err := r.db.QueryRowxContext(ctx, query, item.OwnerID, item.FileRef, item.Name, item.FolderID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", r.table, err)
	}
	return id, nil
}

func (r *pgMedia) ListWithFolders(ctx context.Context, ownerID int64) ([]MediaEntry, error) {
	var list []MediaEntry
	query := fmt.Sprintf(
		`SELECT m.id, m.name, f.name AS folder_name
		 FROM %s m JOIN folders f ON m.folder_id = f.id
		 WHERE m.user_id = $1 ORDER BY m.id`,
		r.table,
	)
	if err := r.db.SelectContext(ctx, &list, query, ownerID); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	return list, nil
}

func (r *pgMedia) Move(ctx context.Context, id, ownerID, folderID int64) error {
	query := fmt.Sprintf(`UPDATE %s SET folder_id = $1 WHERE id = $2 AND user_id = $3`, r.table)
	res, err := r.db.ExecContext(ctx, query, folderID, id, ownerID)
	if err != nil {
		return fmt.Errorf("move %s: %w", r.table, err)
	}
	return requireRow(res)
}

func (r *pgMedia) Delete(ctx context.Context, id, ownerID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND user_id = $2`, r.table)
	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.table, err)
	}
	return requireRow(res)
}

func (r *pgMedia) FileRef(ctx context.Context, id, ownerID int64) (string, error) {
	var ref string
	query := fmt.Sprintf(`SELECT tg_file_id FROM %s WHERE id = $1 AND user_id = $2`, r.table)
	if err := r.db.GetContext(ctx, &ref, query, id, ownerID); err != nil {
		return "", mapNoRows(fmt.Errorf("get %s ref: %w", r.table, err))
	}
	return ref, nil
}

func (r *pgMedia) Count(ctx context.Context, ownerID int64) (int64, error) {
	var n int64
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE user_id = $1`, r.table)
	if err := r.db.GetContext(ctx, &n, query, ownerID); err != nil {
		return 0, fmt.Errorf("count %s: %w", r.table, err)
	}
	return n, nil
}
