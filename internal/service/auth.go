package service

import (
	"context"
	"errors"

	"github.com/adminflow/admin_backend/internal/hash"
	"github.com/adminflow/admin_backend/internal/logging"
	"github.com/adminflow/admin_backend/internal/models"
	"github.com/adminflow/admin_backend/internal/repo"
)

type AuthService struct {
	Repo *repo.GormRepo
}

// authenticate loads the user and verifies the password against the stored
// bcrypt hash.
func (s *AuthService) authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) error {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	if username == "" || password == "" {
		return ErrValidation
	}

	if _, err := s.authenticate(ctx, username, password); err != nil {
		if errors.Is(err, repo.ErrUserNotFound) || errors.Is(err, ErrInvalidCredentials) {
			l.Warn("login_failed", "reason", "invalid username or password")
			return err
		}
		l.Error("login_failed", "reason", "store error", "error", err)
		return err
	}

	l.Info("login_success")
	return nil
}

func (s *AuthService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	l := logging.FromContext(ctx).With("svc", "auth.change_password", "username", username)

	if username == "" || currentPassword == "" || newPassword == "" {
		return ErrValidation
	}

	if _, err := s.authenticate(ctx, username, currentPassword); err != nil {
		if errors.Is(err, repo.ErrUserNotFound) || errors.Is(err, ErrInvalidCredentials) {
			l.Warn("change_password_failed", "reason", "invalid username or password")
			return err
		}
		l.Error("change_password_failed", "reason", "store error", "error", err)
		return err
	}

	newHash, err := hash.HashPassword(newPassword)
	if err != nil {
		l.Error("change_password_failed", "reason", "cannot hash the password", "error", err)
		return err
	}

	if err := s.Repo.UpdatePasswordHash(ctx, username, newHash); err != nil {
		l.Error("change_password_failed", "reason", "store error", "error", err)
		return err
	}

	l.Info("change_password_success")
	return nil
}

// EnsureAdmin seeds the administrator account at startup. A concurrent seed
// from another process loses the FirstOrCreate race and that is fine.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	l := logging.FromContext(ctx).With("svc", "auth.ensure_admin", "username", username)

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return err
	}

	created, err := s.Repo.CreateUserIfNotExists(ctx, &models.User{
		Username:     username,
		PasswordHash: pwHash,
	})
	if err != nil {
		return err
	}

	if created {
		l.Info("admin_user_created")
	} else {
		l.Info("admin_user_exists")
	}
	return nil
}
