package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"orderdesk/internal/domain"
	"orderdesk/internal/dto"
	"orderdesk/internal/errors"
)

const (
	monthLayout = "2006-01"
	dateLayout  = "2006-01-02"
)

type OrderSource interface {
	FindFiltered(ctx context.Context, filter domain.ReportFilter) ([]domain.Order, error)
}

type ReportService struct {
	orders OrderSource
	logger *zap.Logger
}

func NewReportService(orders OrderSource, logger *zap.Logger) *ReportService {
	return &ReportService{
		orders: orders,
		logger: logger,
	}
}

type DaySummary struct {
	Date        string  `json:"date"`
	OrderCount  int     `json:"order_count"`
	TotalAmount float64 `json:"total_amount"`
	PaidAmount  float64 `json:"paid_amount"`
}

type Report struct {
	Orders       []dto.OrderView `json:"orders"`
	TotalSales   float64         `json:"total_sales"`
	TotalPaid    float64         `json:"total_paid"`
	TotalPending float64         `json:"total_pending"`
	PerDay       []DaySummary    `json:"per_day"`
}

// Run builds the sales report. Empty month/date strings mean no filter;
// both filters may apply at once. TotalPending sums the per-order
// pending amounts, which round to 2 decimals individually before
// summation, so it is not computed as TotalSales - TotalPaid.
func (s *ReportService) Run(ctx context.Context, month, date string) (*Report, error) {
	filter, err := parseFilter(month, date)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.FindFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Orders: dto.NewOrderViews(orders),
		PerDay: []DaySummary{},
	}

	dayIndex := map[string]int{}
	for _, o := range orders {
		report.TotalSales += o.TotalAmount
		report.TotalPaid += o.PaidAmount
		report.TotalPending += o.PendingAmount()

		day := o.CreatedAt.Format(dateLayout)
		i, seen := dayIndex[day]
		if !seen {
			// Orders arrive ascending, so days append in order.
			i = len(report.PerDay)
			dayIndex[day] = i
			report.PerDay = append(report.PerDay, DaySummary{Date: day})
		}
		report.PerDay[i].OrderCount++
		report.PerDay[i].TotalAmount += o.TotalAmount
		report.PerDay[i].PaidAmount += o.PaidAmount
	}

	s.logger.Debug("report built",
		zap.String("month", month),
		zap.String("date", date),
		zap.Int("orders", len(orders)))
	return report, nil
}

func parseFilter(month, date string) (domain.ReportFilter, error) {
	var filter domain.ReportFilter

	if month != "" {
		start, err := time.Parse(monthLayout, month)
		if err != nil {
			return filter, errors.NewValidationError("invalid month filter", errors.ValidationDetail{
				Field:   "month",
				Message: "month must be formatted YYYY-MM",
			})
		}
		// AddDate rolls December over to January of the next year.
		end := start.AddDate(0, 1, 0)
		filter.MonthStart = &start
		filter.MonthEnd = &end
	}

	if date != "" {
		start, err := time.Parse(dateLayout, date)
		if err != nil {
			return filter, errors.NewValidationError("invalid date filter", errors.ValidationDetail{
				Field:   "date",
				Message: "date must be formatted YYYY-MM-DD",
			})
		}
		end := start.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		filter.DayStart = &start
		filter.DayEnd = &end
	}

	return filter, nil
}
