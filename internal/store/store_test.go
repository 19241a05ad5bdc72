package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_EmptyURLIsNoop(t *testing.T) {
	db, err := Open("")
	require.NoError(t, err)
	assert.False(t, db.Connected())

	ctx := context.Background()
	assert.NoError(t, db.Ping(ctx))
	assert.NoError(t, db.RunEmbeddedMigrations(ctx))
	assert.NoError(t, db.InsertContactMessage(ctx, &ContactMessage{Name: "a"}))
	msgs, err := db.RecentContactMessages(ctx, 10)
	assert.NoError(t, err)
	assert.Empty(t, msgs)
	assert.NoError(t, db.Close())
}

func TestNilDBIsNoop(t *testing.T) {
	var db *DB
	assert.False(t, db.Connected())
	assert.NoError(t, db.Ping(context.Background()))
}

func TestMigrationNames_SortedSQLOnly(t *testing.T) {
	fsys := fstest.MapFS{
		"m/0002_b.sql":   {Data: []byte("SELECT 2")},
		"m/0001_a.SQL":   {Data: []byte("SELECT 1")},
		"m/README.md":    {Data: []byte("docs")},
		"m/nested/x.sql": {Data: []byte("SELECT 3")},
	}
	names, err := migrationNames(fsys, "m")
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_a.SQL", "0002_b.sql"}, names)
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	names, err := migrationNames(migrationsFS, "migrations")
	require.NoError(t, err)
	assert.Contains(t, names, "0001_contact_messages.sql")
}

// TestWithDatabase needs a disposable Postgres in DATABASE_URL.
func TestWithDatabase(t *testing.T) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping database integration tests")
	}

	db, err := Open(dbURL)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, db.RunEmbeddedMigrations(ctx))
	require.NoError(t, db.RunEmbeddedMigrations(ctx), "migrations are recorded and skipped on rerun")

	fp := fmt.Sprintf("test-%d", time.Now().UnixNano())
	msg := &ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hello", Fingerprint: fp}
	require.NoError(t, db.InsertContactMessage(ctx, msg))
	assert.NotZero(t, msg.ID)
	assert.False(t, msg.CreatedAt.IsZero())

	dup := &ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hello", Fingerprint: fp}
	assert.ErrorIs(t, db.InsertContactMessage(ctx, dup), ErrDuplicate)

	recent, err := db.RecentContactMessages(ctx, 5)
	require.NoError(t, err)
	require.NotEmpty(t, recent)
	assert.Equal(t, fp, recent[0].Fingerprint)

	_, err = db.SQL.ExecContext(ctx, `DELETE FROM contact_messages WHERE fingerprint = $1`, fp)
	require.NoError(t, err)
}
