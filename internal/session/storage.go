package session

import (
	"context"
	"fmt"

	"github.com/shiftlog/portal-auth/internal/config"
	"github.com/shiftlog/portal-auth/internal/logger"
)

// NewSessionStorage initialises the durable session layer from
// configuration. It performs the following steps:
//  1. Opens the SQLite connection to the file named in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs a [Store] wired to the migrated database.
//
// Returns an error if the database cannot be opened or migration fails.
func NewSessionStorage(cfg config.SessionStorage, log *logger.Logger) (Store, error) {
	log.Info().Msg("creating session storage...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStore(db, log), nil
}
