package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration-test database. Expects a MySQL
// instance on localhost:3306 with a database named 'orderdesk_test';
// tests skip when it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/orderdesk_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties the test tables and closes the handle.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"Orders", "Admins"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the tables the tests need.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createAdminsTable := `
	CREATE TABLE IF NOT EXISTS Admins (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(100) NOT NULL UNIQUE,
		passwordHash VARBINARY(200) NOT NULL
	)`

	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS Orders (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		customerName VARCHAR(200) NOT NULL,
		phone VARCHAR(50) NOT NULL DEFAULT '',
		address VARCHAR(500) NOT NULL DEFAULT '',
		pincode VARCHAR(20) NOT NULL DEFAULT '',
		item VARCHAR(200) NOT NULL DEFAULT '',
		quantity INT NOT NULL DEFAULT 1,
		totalAmount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		paidAmount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_created (createdAt)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"Admins", createAdminsTable},
		{"Orders", createOrdersTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
