package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Connect must work for any command that links only this package; the
// sqlite driver registration cannot be left to a sibling package's imports.
func TestConnectSQLite(t *testing.T) {
	db, err := Connect("file:connect_sqlite?mode=memory&cache=shared")
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}
