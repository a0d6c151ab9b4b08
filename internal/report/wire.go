package report

import (
	"go.uber.org/zap"

	"orderdesk/internal/report/controller"
	"orderdesk/internal/report/service"
)

type Module struct {
	Service    *service.ReportService
	Controller *controller.ReportController
}

// NewModule reads through the order module's repository; reports never
// write.
func NewModule(orders service.OrderSource, logger *zap.Logger) *Module {
	svc := service.NewReportService(orders, logger)

	return &Module{
		Service:    svc,
		Controller: controller.NewReportController(svc, logger),
	}
}
