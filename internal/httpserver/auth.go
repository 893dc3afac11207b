package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adminflow/admin_backend/internal/logging"
	"github.com/adminflow/admin_backend/internal/repo"
	"github.com/adminflow/admin_backend/internal/service"
	"github.com/adminflow/admin_backend/internal/transport"
)

type AuthHandler struct {
	Svc *service.AuthService
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.Login(ctx, req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, "missing username or password field")
		case errors.Is(err, repo.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusBadRequest, "user not found")
		case errors.Is(err, service.ErrInvalidCredentials):
			return echo.NewHTTPError(http.StatusBadRequest, "incorrect password")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "server error")
		}
	}

	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "login successful"})
}

func (h *AuthHandler) ChangePassword(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.change_password")

	var req transport.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("change_password_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.ChangePassword(ctx, req.Username, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, "missing fields required to change the password")
		case errors.Is(err, repo.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusBadRequest, "user not found")
		case errors.Is(err, service.ErrInvalidCredentials):
			return echo.NewHTTPError(http.StatusBadRequest, "current password is incorrect")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "server error")
		}
	}

	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "password changed successfully"})
}
