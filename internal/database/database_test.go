package database

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqliteDriverRegistered(t *testing.T) {
	// the gorm sqlite dialector opens with DriverName "sqlite", which only
	// the modernc import provides
	assert.Contains(t, sql.Drivers(), "sqlite")
}

func TestConnectSqlite(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
}
