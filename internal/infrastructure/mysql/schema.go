package mysql

import (
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS Admins (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(100) NOT NULL UNIQUE,
		passwordHash VARBINARY(200) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS Orders (
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
	)`,
}

// InitSchema creates the store on first run; existing tables are left alone.
func InitSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("initializing schema: %w", err)
		}
	}
	return nil
}
