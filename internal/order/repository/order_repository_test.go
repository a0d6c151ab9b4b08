package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/domain"
	"orderdesk/internal/errors"
	"orderdesk/internal/testutil"
)

func TestNewMySQLOrderRepository(t *testing.T) {
	repo := NewMySQLOrderRepository(nil)
	assert.NotNil(t, repo)
}

func testOrder(customer string, createdAt time.Time) domain.Order {
	return domain.Order{
		CustomerName: customer,
		Phone:        "9876543210",
		Address:      "14 Lake Road",
		Pincode:      "560001",
		Item:         "Handbag",
		Quantity:     2,
		TotalAmount:  1500,
		PaidAmount:   500,
		Status:       domain.OrderStatusPending,
		CreatedAt:    createdAt,
	}
}

func TestIntegrationCreateAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLOrderRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, testOrder("Asha Verma", time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", found.CustomerName)
	assert.Equal(t, 2, found.Quantity)
	assert.Equal(t, float64(1500), found.TotalAmount)
	assert.Equal(t, float64(500), found.PaidAmount)
	assert.Equal(t, domain.OrderStatusPending, found.Status)
}

func TestIntegrationFindByIDNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLOrderRepository(db)

	_, err := repo.FindByID(context.Background(), 99999)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestIntegrationFindAllNewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLOrderRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, testOrder("Older", time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testOrder("Newer", time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	orders, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "Newer", orders[0].CustomerName)
	assert.Equal(t, "Older", orders[1].CustomerName)
}

func TestIntegrationFindFiltered(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLOrderRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, testOrder("February", time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testOrder("March", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	monthStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	orders, err := repo.FindFiltered(ctx, domain.ReportFilter{
		MonthStart: &monthStart,
		MonthEnd:   &monthEnd,
	})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "February", orders[0].CustomerName)
}

func TestIntegrationFindFilteredEmptyFilterMatchesAllAscending(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLOrderRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, testOrder("Newer", time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testOrder("Older", time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	orders, err := repo.FindFiltered(ctx, domain.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "Older", orders[0].CustomerName)
	assert.Equal(t, "Newer", orders[1].CustomerName)
}

func TestIntegrationUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLOrderRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, testOrder("Asha Verma", time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	updated := *created
	updated.Item = "Wallet"
	updated.PaidAmount = 1500
	updated.Status = domain.OrderStatusCompleted

	require.NoError(t, repo.Update(ctx, created.ID, updated))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wallet", found.Item)
	assert.Equal(t, float64(1500), found.PaidAmount)
	assert.Equal(t, domain.OrderStatusCompleted, found.Status)
}

func TestIntegrationDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLOrderRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, testOrder("Asha Verma", time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.FindByID(ctx, created.ID)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestIntegrationDeleteNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLOrderRepository(db)

	err := repo.Delete(context.Background(), 99999)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestIntegrationSetStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	repo := NewMySQLOrderRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, testOrder("Asha Verma", time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	require.NoError(t, repo.SetStatus(ctx, created.ID, domain.OrderStatusCompleted))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, found.Status)
}
