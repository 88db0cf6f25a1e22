package storage

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	tableFiles  = "files"
	tableImages = "images"

	pgUniqueViolation = "23505"
)

// Postgres implements Store over a sqlx connection.
type Postgres struct {
	contacts *pgContacts
	folders  *pgFolders
	files    *pgMedia
	images   *pgMedia
}

// NewPostgres constructs the postgres-backed store.
func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{
		contacts: &pgContacts{db: db},
		folders:  &pgFolders{db: db},
		files:    &pgMedia{db: db, table: tableFiles},
		images:   &pgMedia{db: db, table: tableImages},
	}
}

func (p *Postgres) Contacts() ContactStore { return p.contacts }
func (p *Postgres) Folders() FolderStore   { return p.folders }
func (p *Postgres) Files() MediaStore      { return p.files }
func (p *Postgres) Images() MediaStore     { return p.images }

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation
}
