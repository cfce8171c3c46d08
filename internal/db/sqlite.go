package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"coffeejournal/internal/logging"
)

// OpenSQLite opens (creating if needed) the journal database and brings its
// schema up to date from the embedded migrations.
func OpenSQLite(dbPath string, logger zerolog.Logger) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logging.NewGormLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	return database, nil
}
