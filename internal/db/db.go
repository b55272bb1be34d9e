// Package db constructs the gorm connection pool and applies the
// embedded schema migrations, mirroring db.rs's Pool (connection pool
// sized by DATABASE_POOL_SIZE, embedded migrations run at construction)
// while adapting it from deadpool-diesel to gorm + golang-migrate.
package db

import (
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/pkg/errors"

	"github.com/namada-testnet/score-extractor/db/migrations"
	"github.com/namada-testnet/score-extractor/internal/corerr"
	"github.com/namada-testnet/score-extractor/internal/log"
)

var logger = log.NewModuleLogger(log.ModuleDB)

const defaultPoolSize = 8

// Open establishes the gorm connection pool and applies pending
// migrations, aborting if the schema cannot be brought up to the
// required version (spec.md §6: "the core must run against a schema at
// or beyond the required version or abort").
func Open(databaseURL string) (*gorm.DB, error) {
	if err := applyMigrations(databaseURL); err != nil {
		return nil, corerr.Wrap(corerr.ClassConfiguration, err, "apply migrations")
	}

	conn, err := gorm.Open("postgres", databaseURL)
	if err != nil {
		return nil, corerr.Wrap(corerr.ClassConfiguration, err, "open database")
	}

	poolSize := defaultPoolSize
	if raw := os.Getenv("DATABASE_POOL_SIZE"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			poolSize = n
		} else {
			logger.Warn("invalid DATABASE_POOL_SIZE, using default", "raw", raw, "default", defaultPoolSize)
		}
	}
	conn.DB().SetMaxOpenConns(poolSize)
	conn.DB().SetMaxIdleConns(poolSize)

	logger.Info("database pool opened", "pool_size", poolSize)
	return conn, nil
}

func applyMigrations(databaseURL string) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return errors.Wrap(err, "open embedded migration source")
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return errors.Wrap(err, "construct migrator")
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return errors.Wrap(err, "run migrations")
	}
	return nil
}

// WithTx runs fn inside a single read-write transaction, committing on a
// nil return and rolling back otherwise — the shared shape used by each
// of the three per-pass phases (spec.md §5, §7).
func WithTx(conn *gorm.DB, fn func(tx *gorm.DB) error) (err error) {
	tx := conn.Begin()
	if tx.Error != nil {
		return corerr.Wrap(corerr.ClassTransientInfra, tx.Error, "begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err = fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err = tx.Commit().Error; err != nil {
		return corerr.Wrap(corerr.ClassTransientInfra, err, "commit transaction")
	}
	return nil
}
