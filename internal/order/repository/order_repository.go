package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"orderdesk/internal/domain"
	"orderdesk/internal/errors"
)

const orderColumns = `id, customerName, phone, address, pincode, item,
	       quantity, totalAmount, paidAmount, status, createdAt`

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

func (r *MySQLOrderRepository) Create(ctx context.Context, order domain.Order) (*domain.Order, error) {
	query := `
		INSERT INTO Orders (customerName, phone, address, pincode, item,
		                    quantity, totalAmount, paidAmount, status, createdAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		order.CustomerName, order.Phone, order.Address, order.Pincode, order.Item,
		order.Quantity, order.TotalAmount, order.PaidAmount, order.Status, order.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting order: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting last insert id: %w", err)
	}

	order.ID = uint(lastInsertID)
	return &order, nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM Orders WHERE id = ?`, orderColumns)

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.CustomerName, &order.Phone, &order.Address, &order.Pincode,
		&order.Item, &order.Quantity, &order.TotalAmount, &order.PaidAmount,
		&order.Status, &order.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return &order, nil
}

// FindAll returns every order, newest first. This is the listing order;
// reports sort the other way.
func (r *MySQLOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM Orders ORDER BY createdAt DESC`, orderColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

// FindFiltered returns orders inside the filter's windows, ascending by
// createdAt. Both windows may apply at once; an empty filter matches all.
func (r *MySQLOrderRepository) FindFiltered(ctx context.Context, filter domain.ReportFilter) ([]domain.Order, error) {
	var conditions []string
	var args []interface{}

	if filter.MonthStart != nil && filter.MonthEnd != nil {
		conditions = append(conditions, "createdAt >= ? AND createdAt < ?")
		args = append(args, *filter.MonthStart, *filter.MonthEnd)
	}
	if filter.DayStart != nil && filter.DayEnd != nil {
		conditions = append(conditions, "createdAt >= ? AND createdAt <= ?")
		args = append(args, *filter.DayStart, *filter.DayEnd)
	}

	query := fmt.Sprintf(`SELECT %s FROM Orders`, orderColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY createdAt ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying filtered orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

// Update overwrites every editable column. Status is written verbatim;
// id and createdAt are immutable.
func (r *MySQLOrderRepository) Update(ctx context.Context, id uint, order domain.Order) error {
	query := `
		UPDATE Orders
		SET customerName = ?, phone = ?, address = ?, pincode = ?, item = ?,
		    quantity = ?, totalAmount = ?, paidAmount = ?, status = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		order.CustomerName, order.Phone, order.Address, order.Pincode, order.Item,
		order.Quantity, order.TotalAmount, order.PaidAmount, order.Status, id,
	)
	if err != nil {
		return fmt.Errorf("updating order: %w", err)
	}

	return nil
}

func (r *MySQLOrderRepository) Delete(ctx context.Context, id uint) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM Orders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	return nil
}

func (r *MySQLOrderRepository) SetStatus(ctx context.Context, id uint, status string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE Orders SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}
	return nil
}

func scanOrders(rows *sql.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID, &order.CustomerName, &order.Phone, &order.Address, &order.Pincode,
			&order.Item, &order.Quantity, &order.TotalAmount, &order.PaidAmount,
			&order.Status, &order.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}
