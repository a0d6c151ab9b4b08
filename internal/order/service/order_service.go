package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"orderdesk/internal/domain"
	"orderdesk/internal/dto"
	"orderdesk/internal/errors"
)

type Repository interface {
	Create(ctx context.Context, order domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	Update(ctx context.Context, id uint, order domain.Order) error
	Delete(ctx context.Context, id uint) error
	SetStatus(ctx context.Context, id uint, status string) error
}

type OrderService struct {
	repo         Repository
	businessName string
	logger       *zap.Logger
	now          func() time.Time
}

func NewOrderService(repo Repository, businessName string, logger *zap.Logger) *OrderService {
	return &OrderService{
		repo:         repo,
		businessName: businessName,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *OrderService) Create(ctx context.Context, form dto.OrderForm) (*domain.Order, error) {
	if strings.TrimSpace(form.CustomerName) == "" {
		return nil, errors.NewValidationError("customer name is required", errors.ValidationDetail{
			Field:   "customer_name",
			Message: "customer_name must not be empty",
		})
	}

	order := orderFromForm(form)
	order.Status = domain.OrderStatusPending
	order.CreatedAt = s.now()

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		zap.Uint("orderId", created.ID),
		zap.String("customer", created.CustomerName),
		zap.Float64("total", created.TotalAmount))
	return created, nil
}

func (s *OrderService) Get(ctx context.Context, id uint) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll(ctx)
}

// Update overwrites the editable fields of an existing order. The
// posted status goes through verbatim, unlike MarkStatus; callers that
// want the guarded path use MarkStatus instead.
func (s *OrderService) Update(ctx context.Context, id uint, form dto.OrderForm) (*domain.Order, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order := orderFromForm(form)
	order.ID = existing.ID
	order.CreatedAt = existing.CreatedAt
	order.Status = form.Status

	if err := s.repo.Update(ctx, id, order); err != nil {
		return nil, err
	}

	s.logger.Info("order updated", zap.Uint("orderId", id))
	return &order, nil
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("order deleted", zap.Uint("orderId", id))
	return nil
}

// MarkStatus sets the fulfillment state. The order must exist; a state
// outside {pending, completed} is a silent no-op rather than an error.
func (s *OrderService) MarkStatus(ctx context.Context, id uint, state string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if !domain.ValidStatus(state) {
		s.logger.Warn("ignoring unknown order state", zap.Uint("orderId", id), zap.String("state", state))
		return nil
	}

	if err := s.repo.SetStatus(ctx, id, state); err != nil {
		return err
	}

	s.logger.Info("order marked", zap.Uint("orderId", id), zap.String("state", state))
	return nil
}

func (s *OrderService) InvoiceView(ctx context.Context, id uint) (*dto.InvoiceView, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.InvoiceView{
		Order:        dto.NewOrderView(*order),
		BusinessName: s.businessName,
	}, nil
}

// orderFromForm coerces raw form values with their fallbacks: quantity
// defaults to 1 on anything unusable, amounts to 0. Bad numeric input
// is recovered here, not surfaced.
func orderFromForm(form dto.OrderForm) domain.Order {
	return domain.Order{
		CustomerName: strings.TrimSpace(form.CustomerName),
		Phone:        strings.TrimSpace(form.Phone),
		Address:      strings.TrimSpace(form.Address),
		Pincode:      strings.TrimSpace(form.Pincode),
		Item:         strings.TrimSpace(form.Item),
		Quantity:     coerceQuantity(form.Quantity),
		TotalAmount:  coerceAmount(form.TotalAmount),
		PaidAmount:   coerceAmount(form.PaidAmount),
	}
}

func coerceQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func coerceAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
