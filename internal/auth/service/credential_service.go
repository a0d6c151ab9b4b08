package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"orderdesk/internal/domain"
	"orderdesk/internal/errors"
)

type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Admin, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, admin domain.Admin) (uint, error)
}

type CredentialService struct {
	repo   AdminRepository
	logger *zap.Logger
}

func NewCredentialService(repo AdminRepository, logger *zap.Logger) *CredentialService {
	return &CredentialService{
		repo:   repo,
		logger: logger,
	}
}

// Verify reports whether the supplied password matches the stored hash.
// Unknown usernames and wrong passwords both come back (false, nil):
// login never reveals which half was wrong.
func (s *CredentialService) Verify(ctx context.Context, username, password string) (bool, error) {
	admin, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if _, ok := errors.IsNotFoundError(err); ok {
			return false, nil
		}
		return false, err
	}

	if err := bcrypt.CompareHashAndPassword(admin.PasswordHash, []byte(password)); err != nil {
		return false, nil
	}

	return true, nil
}

// EnsureDefaultAdmin seeds a single administrator on first startup.
// Any existing record, whatever its username, makes this a no-op.
func (s *CredentialService) EnsureDefaultAdmin(ctx context.Context, username, password string) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.NewInternalError("hashing default admin password", err)
	}

	if _, err := s.repo.Insert(ctx, domain.Admin{Username: username, PasswordHash: hash}); err != nil {
		return err
	}

	s.logger.Info("default admin created", zap.String("username", username))
	return nil
}
