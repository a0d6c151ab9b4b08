package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"orderdesk/internal/domain"
	"orderdesk/internal/dto"
	apperrors "orderdesk/internal/errors"
)

// Mock implementations

type mockOrderUseCase struct {
	CreateFunc      func(ctx context.Context, form dto.OrderForm) (*domain.Order, error)
	GetFunc         func(ctx context.Context, id uint) (*domain.Order, error)
	ListFunc        func(ctx context.Context) ([]domain.Order, error)
	UpdateFunc      func(ctx context.Context, id uint, form dto.OrderForm) (*domain.Order, error)
	DeleteFunc      func(ctx context.Context, id uint) error
	MarkStatusFunc  func(ctx context.Context, id uint, state string) error
	InvoiceViewFunc func(ctx context.Context, id uint) (*dto.InvoiceView, error)
}

func (m *mockOrderUseCase) Create(ctx context.Context, form dto.OrderForm) (*domain.Order, error) {
	return m.CreateFunc(ctx, form)
}

func (m *mockOrderUseCase) Get(ctx context.Context, id uint) (*domain.Order, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockOrderUseCase) List(ctx context.Context) ([]domain.Order, error) {
	return m.ListFunc(ctx)
}

func (m *mockOrderUseCase) Update(ctx context.Context, id uint, form dto.OrderForm) (*domain.Order, error) {
	return m.UpdateFunc(ctx, id, form)
}

func (m *mockOrderUseCase) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockOrderUseCase) MarkStatus(ctx context.Context, id uint, state string) error {
	return m.MarkStatusFunc(ctx, id, state)
}

func (m *mockOrderUseCase) InvoiceView(ctx context.Context, id uint) (*dto.InvoiceView, error) {
	return m.InvoiceViewFunc(ctx, id)
}

func newTestRouter(useCase OrderUseCase) chi.Router {
	c := NewOrderController(useCase, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/orders", c.List)
	r.Post("/orders/add", c.Create)
	r.Get("/orders/{orderID}/edit", c.EditForm)
	r.Post("/orders/{orderID}/edit", c.Update)
	r.Post("/orders/{orderID}/delete", c.Delete)
	r.Get("/orders/{orderID}/mark/{state}", c.Mark)
	r.Get("/orders/{orderID}/invoice", c.Invoice)
	return r
}

func postForm(path string, values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// Tests

func TestList(t *testing.T) {
	router := newTestRouter(&mockOrderUseCase{
		ListFunc: func(ctx context.Context) ([]domain.Order, error) {
			return []domain.Order{
				{
					ID:           1,
					CustomerName: "Asha Verma",
					TotalAmount:  1500,
					PaidAmount:   500,
					Status:       domain.OrderStatusPending,
					CreatedAt:    time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC),
				},
			}, nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Asha Verma")
	assert.Contains(t, w.Body.String(), `"pending_amount":1000`)
}

func TestCreate_Redirects(t *testing.T) {
	var gotForm dto.OrderForm
	router := newTestRouter(&mockOrderUseCase{
		CreateFunc: func(ctx context.Context, form dto.OrderForm) (*domain.Order, error) {
			gotForm = form
			return &domain.Order{ID: 1}, nil
		},
	})

	values := url.Values{}
	values.Set("customer_name", "Asha Verma")
	values.Set("quantity", "2")
	values.Set("total_amount", "1500")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, postForm("/orders/add", values))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/orders", w.Header().Get("Location"))
	assert.Equal(t, "Asha Verma", gotForm.CustomerName)
	assert.Equal(t, "2", gotForm.Quantity)
}

func TestCreate_ValidationError(t *testing.T) {
	router := newTestRouter(&mockOrderUseCase{
		CreateFunc: func(ctx context.Context, form dto.OrderForm) (*domain.Order, error) {
			return nil, apperrors.NewValidationError("customer name is required", apperrors.ValidationDetail{
				Field:   "customer_name",
				Message: "customer_name must not be empty",
			})
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, postForm("/orders/add", url.Values{}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, w.Body.String(), "customer_name")
}

func TestEditForm_NotFound(t *testing.T) {
	router := newTestRouter(&mockOrderUseCase{
		GetFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order with id 99 not found")
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/99/edit", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestEditForm_NonNumericID(t *testing.T) {
	router := newTestRouter(&mockOrderUseCase{
		GetFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			t.Fatal("use case should not be reached")
			return nil, nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/abc/edit", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMark_PassesStateThrough(t *testing.T) {
	var gotID uint
	var gotState string
	router := newTestRouter(&mockOrderUseCase{
		MarkStatusFunc: func(ctx context.Context, id uint, state string) error {
			gotID = id
			gotState = state
			return nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/7/mark/completed", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/orders", w.Header().Get("Location"))
	assert.Equal(t, uint(7), gotID)
	assert.Equal(t, "completed", gotState)
}

func TestDelete_Redirects(t *testing.T) {
	router := newTestRouter(&mockOrderUseCase{
		DeleteFunc: func(ctx context.Context, id uint) error {
			return nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, postForm("/orders/7/delete", url.Values{}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/orders", w.Header().Get("Location"))
}

func TestInvoice(t *testing.T) {
	router := newTestRouter(&mockOrderUseCase{
		InvoiceViewFunc: func(ctx context.Context, id uint) (*dto.InvoiceView, error) {
			return &dto.InvoiceView{
				Order: dto.NewOrderView(domain.Order{
					ID:          id,
					TotalAmount: 1500,
					PaidAmount:  500,
				}),
				BusinessName: "Pookie Sells",
			}, nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/4/invoice", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pookie Sells")
	assert.Contains(t, w.Body.String(), `"pending_amount":1000`)
}

func TestList_InternalError(t *testing.T) {
	router := newTestRouter(&mockOrderUseCase{
		ListFunc: func(ctx context.Context) ([]domain.Order, error) {
			return nil, assert.AnError
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
}
