package migration

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct {
	upErr    error
	closeSrc error
	closeDB  error
	upCalled bool
}

func (f *fakeMigrator) Up() error {
	f.upCalled = true
	return f.upErr
}

func (f *fakeMigrator) Close() (error, error) {
	return f.closeSrc, f.closeDB
}

func TestMigration_Up(t *testing.T) {
	fake := &fakeMigrator{}
	mg := New(func(*sql.DB) (Migrator, error) { return fake, nil })

	err := mg.Up(nil)
	require.NoError(t, err)
	assert.True(t, fake.upCalled)
}

func TestMigration_Up_NoChange(t *testing.T) {
	fake := &fakeMigrator{upErr: migrate.ErrNoChange}
	mg := New(func(*sql.DB) (Migrator, error) { return fake, nil })

	assert.NoError(t, mg.Up(nil))
}

func TestMigration_Up_EngineError(t *testing.T) {
	engineErr := errors.New("cannot open source")
	mg := New(func(*sql.DB) (Migrator, error) { return nil, engineErr })

	assert.ErrorIs(t, mg.Up(nil), engineErr)
}

func TestMigration_Up_UpError(t *testing.T) {
	upErr := errors.New("dirty database")
	fake := &fakeMigrator{upErr: upErr}
	mg := New(func(*sql.DB) (Migrator, error) { return fake, nil })

	assert.ErrorIs(t, mg.Up(nil), upErr)
}

func TestMigration_Up_CloseErrors(t *testing.T) {
	fake := &fakeMigrator{closeDB: errors.New("close failed")}
	mg := New(func(*sql.DB) (Migrator, error) { return fake, nil })

	err := mg.Up(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "close failed")
}
