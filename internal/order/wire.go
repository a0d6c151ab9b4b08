package order

import (
	"database/sql"

	"go.uber.org/zap"

	"orderdesk/internal/config"
	"orderdesk/internal/order/controller"
	"orderdesk/internal/order/repository"
	"orderdesk/internal/order/service"
)

type Module struct {
	Repository *repository.MySQLOrderRepository
	Service    *service.OrderService
	Controller *controller.OrderController
}

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *Module {
	repo := repository.NewMySQLOrderRepository(db)
	svc := service.NewOrderService(repo, cfg.Business.Name, logger)

	return &Module{
		Repository: repo,
		Service:    svc,
		Controller: controller.NewOrderController(svc, logger),
	}
}
