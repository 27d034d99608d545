package testhelpers

import (
	"context"
	"os"
	"testing"

	"designmeta/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TestDB holds the database connection for testing
type TestDB struct {
	Pool    *pgxpool.Pool
	Cleanup func() error
}

// SetupTestDB creates a pooled connection for testing. Tests using it should
// skip when no TEST_DATABASE_URL is configured.
func SetupTestDB(t *testing.T, connString string) *TestDB {
	t.Helper()

	if connString == "" {
		connString = os.Getenv("TEST_DATABASE_URL")
		if connString == "" {
			t.Skip("TEST_DATABASE_URL not set, skipping database test")
		}
	}

	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	return &TestDB{
		Pool: pool,
		Cleanup: func() error {
			pool.Close()
			return nil
		},
	}
}

// GrantCapability creates a test user holding the given capability
func GrantCapability(t *testing.T, db *TestDB, capability string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	query := `
		INSERT INTO user_capabilities (user_id, capability)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	_, err := db.Pool.Exec(context.Background(), query, userID, capability)
	if err != nil {
		t.Fatalf("Failed to grant capability: %v", err)
	}

	return userID
}

// ClearDesignMeta removes both design image keys for a product
func ClearDesignMeta(t *testing.T, db *TestDB, productID int64) {
	t.Helper()

	query := `DELETE FROM product_meta WHERE product_id = $1 AND meta_key IN ($2, $3)`
	_, err := db.Pool.Exec(context.Background(), query, productID, models.MetaDesignImageID, models.MetaDesignImageURL)
	if err != nil {
		t.Fatalf("Failed to clear design meta: %v", err)
	}
}
