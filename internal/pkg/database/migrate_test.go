package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationNames_Sorted(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "0001_init.sql", names[0])

	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}

func TestInitMigration_DeclaresDayUniqueness(t *testing.T) {
	body, err := migrationFiles.ReadFile("migrations/0001_init.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "CONSTRAINT attendances_user_date_key UNIQUE (user_id, date)")
	assert.Contains(t, string(body), "CONSTRAINT users_email_key UNIQUE (email)")
}
