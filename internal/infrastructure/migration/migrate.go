package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	msqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrator is the surface we need from migrate.Migrate.
type Migrator interface {
	Up() error
	Close() (error, error)
}

// Engine builds a Migrator for an open database handle, so tests can swap the
// real library out.
type Engine func(db *sql.DB) (Migrator, error)

type Migration struct {
	engine Engine
}

func New(engine Engine) *Migration {
	return &Migration{engine: engine}
}

// DefaultEngine wires the embedded migrations to the sqlite3 driver.
func DefaultEngine(db *sql.DB) (Migrator, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}
	driver, err := msqlite.WithInstance(db, &msqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("migration driver: %w", err)
	}
	return migrate.NewWithInstance("iofs", source, "sqlite3", driver)
}

func (mg *Migration) Up(db *sql.DB) (err error) {
	m, err := mg.engine(db)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%w; migration up error", err)
	}
	return nil
}
