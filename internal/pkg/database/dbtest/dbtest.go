// Package dbtest opens the integration test database. Tests that use it are
// skipped unless TEST_DATABASE_URL is set.
package dbtest

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

// Tables in truncation order.
var Tables = []string{"refresh_tokens", "attendances", "users"}

// Open connects to TEST_DATABASE_URL, applies migrations and empties every
// table. The pool is closed when the test finishes.
func Open(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(db.Close)

	ctx := context.Background()
	require.NoError(t, database.Migrate(ctx, db))
	Truncate(t, db)
	return db
}

// Truncate removes all rows from the application tables.
func Truncate(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()
	for _, table := range Tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "failed to truncate %s", table)
	}
}
