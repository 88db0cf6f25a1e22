package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type pgFolders struct {
	db *sqlx.DB
}

func (r *pgFolders) EnsureDefault(ctx context.Context, ownerID int64) (int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id,
		`SELECT id FROM folders WHERE user_id = $1 AND name = $2`,
		ownerID, DefaultFolderName,
	)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("find default folder: %w", err)
	}

	// Concurrent callers may race here; the unique index makes the insert
	// a no-op for the loser, so re-read on conflict.
	err = r.db.QueryRowxContext(ctx,
		`INSERT INTO folders (user_id, name) VALUES ($1, $2)
		 ON CONFLICT (user_id, name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`,
		ownerID, DefaultFolderName,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create default folder: %w", err)
	}
	return id, nil
}

func (r *pgFolders) Create(ctx context.Context, ownerID int64, name string) (int64, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO folders (user_id, name) VALUES ($1, $2) RETURNING id`,
		ownerID, name,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("insert folder: %w", err)
	}
	return id, nil
}

func (r *pgFolders) FindByName(ctx context.Context, ownerID int64, name string) (Folder, error) {
	var folder Folder
	err := r.db.GetContext(ctx, &folder,
		`SELECT id, user_id, name FROM folders WHERE user_id = $1 AND name = $2`,
		ownerID, name,
	)
	if err != nil {
		return Folder{}, mapNoRows(fmt.Errorf("find folder: %w", err))
	}
	return folder, nil
}

func (r *pgFolders) ListNames(ctx context.Context, ownerID int64) ([]string, error) {
	var names []string
	err := r.db.SelectContext(ctx, &names,
		`SELECT name FROM folders WHERE user_id = $1 ORDER BY id`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	return names, nil
}

func (r *pgFolders) Delete(ctx context.Context, id, ownerID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM folders WHERE id = $1 AND user_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}
	return requireRow(res)
}

func (r *pgFolders) IsEmpty(ctx context.Context, folderID int64) (bool, error) {
	var occupied bool
	err := r.db.GetContext(ctx, &occupied,
		`SELECT EXISTS (SELECT 1 FROM files WHERE folder_id = $1)
		     OR EXISTS (SELECT 1 FROM images WHERE folder_id = $1)`,
		folderID,
	)
	if err != nil {
		return false, fmt.Errorf("check folder occupancy: %w", err)
	}
	return !occupied, nil
}
