package auth

import (
	"database/sql"

	"go.uber.org/zap"

	"orderdesk/internal/auth/controller"
	"orderdesk/internal/auth/repository"
	"orderdesk/internal/auth/service"
	"orderdesk/internal/auth/session"
	"orderdesk/internal/config"
)

type Module struct {
	Credentials *service.CredentialService
	Sessions    *session.Manager
	Controller  *controller.AuthController
}

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *Module {
	repo := repository.NewMySQLAdminRepository(db)
	credentials := service.NewCredentialService(repo, logger)
	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL)

	return &Module{
		Credentials: credentials,
		Sessions:    sessions,
		Controller:  controller.NewAuthController(credentials, sessions, logger),
	}
}
