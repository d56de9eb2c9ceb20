// Package storage opens the local SQLite database and wires the concrete
// repositories on top of it.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/loanmo/crm/internal/migrations"
	"github.com/loanmo/crm/internal/repositories/enquiries"
	"github.com/loanmo/crm/internal/repositories/followups"
	"github.com/loanmo/crm/internal/repositories/kv"
)

// Repositories bundles every durable store used by the application.
type Repositories struct {
	KV        kv.Repository
	Enquiries enquiries.Repository
	FollowUps followups.Repository
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the database at dsn, applies
// migrations, and returns the handle plus the wired repositories.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, *Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	repos := &Repositories{
		KV:        kv.NewSQLiteRepository(db),
		Enquiries: enquiries.NewSQLiteRepository(db),
		FollowUps: followups.NewSQLiteRepository(db),
	}
	return db, repos, nil
}
