package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"orderdesk/internal/domain"
	"orderdesk/internal/dto"
	apperrors "orderdesk/internal/errors"
)

type OrderUseCase interface {
	Create(ctx context.Context, form dto.OrderForm) (*domain.Order, error)
	Get(ctx context.Context, id uint) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Update(ctx context.Context, id uint, form dto.OrderForm) (*domain.Order, error)
	Delete(ctx context.Context, id uint) error
	MarkStatus(ctx context.Context, id uint, state string) error
	InvoiceView(ctx context.Context, id uint) (*dto.InvoiceView, error)
}

type OrderController struct {
	useCase OrderUseCase
	logger  *zap.Logger
}

func NewOrderController(useCase OrderUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	orders, err := c.useCase.List(r.Context())
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}
	c.writeJSON(w, http.StatusOK, dto.NewOrderViews(orders))
}

// AddForm hands the presentation layer the defaults a blank form starts
// from.
func (c *OrderController) AddForm(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"quantity":     1,
		"total_amount": 0,
		"paid_amount":  0,
		"status":       domain.OrderStatusPending,
	})
}

func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	form, err := readOrderForm(r)
	if err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	if _, err := c.useCase.Create(r.Context(), form); err != nil {
		c.handleError(w, err, logger)
		return
	}

	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

func (c *OrderController) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := c.orderID(w, r)
	if !ok {
		return
	}

	order, err := c.useCase.Get(r.Context(), id)
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}
	c.writeJSON(w, http.StatusOK, dto.NewOrderView(*order))
}

func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.orderID(w, r)
	if !ok {
		return
	}

	form, err := readOrderForm(r)
	if err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	if _, err := c.useCase.Update(r.Context(), id, form); err != nil {
		c.handleError(w, err, logger)
		return
	}

	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := c.orderID(w, r)
	if !ok {
		return
	}

	if err := c.useCase.Delete(r.Context(), id); err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

func (c *OrderController) Mark(w http.ResponseWriter, r *http.Request) {
	id, ok := c.orderID(w, r)
	if !ok {
		return
	}
	state := chi.URLParam(r, "state")

	if err := c.useCase.MarkStatus(r.Context(), id, state); err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

func (c *OrderController) Invoice(w http.ResponseWriter, r *http.Request) {
	id, ok := c.orderID(w, r)
	if !ok {
		return
	}

	view, err := c.useCase.InvoiceView(r.Context(), id)
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}
	c.writeJSON(w, http.StatusOK, view)
}

func (c *OrderController) orderID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "orderID")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": "order with id " + raw + " not found",
		})
		return 0, false
	}
	return uint(id), true
}

func readOrderForm(r *http.Request) (dto.OrderForm, error) {
	if err := r.ParseForm(); err != nil {
		return dto.OrderForm{}, err
	}
	return dto.OrderForm{
		CustomerName: r.PostFormValue("customer_name"),
		Phone:        r.PostFormValue("phone"),
		Address:      r.PostFormValue("address"),
		Pincode:      r.PostFormValue("pincode"),
		Item:         r.PostFormValue("item"),
		Quantity:     r.PostFormValue("quantity"),
		TotalAmount:  r.PostFormValue("total_amount"),
		PaidAmount:   r.PostFormValue("paid_amount"),
		Status:       r.PostFormValue("status"),
	}, nil
}

func (c *OrderController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": nfe.Message,
		})
		return
	}

	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "VALIDATION_ERROR",
			"message": ve.Message,
			"details": ve.Details,
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
