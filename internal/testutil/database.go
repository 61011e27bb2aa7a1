package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"

	"storefront/internal/infrastructure/mysql"
)

// SetupTestDB opens the integration database named by STOREFRONT_TEST_DSN
// (default root@localhost:3306/storefront_test) and skips the test when it
// is unreachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("STOREFRONT_TEST_DSN")
	if dsn == "" {
		dsn = "root:@tcp(localhost:3306)/storefront_test?parseTime=true&loc=UTC&clientFoundRows=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties every table and closes db.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"OrderItems", "Orders", "Product", "Reviews", "SiteContent", "ContactSubmission", "Admins"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the storefront schema if it is missing.
func SetupTestTables(t *testing.T, db *sql.DB) {
	if err := mysql.Migrate(context.Background(), db); err != nil {
		t.Fatalf("failed to create tables: %v", err)
	}
}
