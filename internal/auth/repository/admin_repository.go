package repository

import (
	"context"
	"database/sql"
	"fmt"

	"orderdesk/internal/domain"
	"orderdesk/internal/errors"
)

type MySQLAdminRepository struct {
	db *sql.DB
}

func NewMySQLAdminRepository(db *sql.DB) *MySQLAdminRepository {
	return &MySQLAdminRepository{db: db}
}

func (r *MySQLAdminRepository) FindByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	query := `SELECT id, username, passwordHash FROM Admins WHERE username = ?`

	var admin domain.Admin
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&admin.ID, &admin.Username, &admin.PasswordHash,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("admin %q not found", username))
	}
	if err != nil {
		return nil, fmt.Errorf("querying admin by username: %w", err)
	}

	return &admin, nil
}

func (r *MySQLAdminRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM Admins`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting admins: %w", err)
	}
	return count, nil
}

func (r *MySQLAdminRepository) Insert(ctx context.Context, admin domain.Admin) (uint, error) {
	query := `INSERT INTO Admins (username, passwordHash) VALUES (?, ?)`

	result, err := r.db.ExecContext(ctx, query, admin.Username, admin.PasswordHash)
	if err != nil {
		return 0, fmt.Errorf("inserting admin: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}
