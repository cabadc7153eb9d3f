package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pratheepg2026-commits/crm-v2/internal/repository"
	"github.com/pratheepg2026-commits/crm-v2/internal/service"
	"github.com/pratheepg2026-commits/crm-v2/pkg/logger"
	"github.com/pratheepg2026-commits/crm-v2/prometheus"
	"go.uber.org/zap"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,max=120"`
	Password string `json:"password" validate:"required,max=72"`
	Name     string `json:"name" validate:"required,max=100"`
	Role     string `json:"role" validate:"max=50"`
	Phone    string `json:"phone" validate:"max=20"`
	FarmName string `json:"farm_name" validate:"max=200"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=72"`
}

type AuthHandler struct {
	Auth  *service.AuthService
	Users *repository.UserRepository
}

func (h *AuthHandler) Register(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RegisterCounter.Inc()

	var req registerRequest
	if err := bindAndValidate(c, &req, "Missing required fields"); err != nil {
		prometheus.RecordAuthError("invalid_request")
		return err
	}

	user, err := h.Auth.Register(c.Request().Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
		Phone:    req.Phone,
		FarmName: req.FarmName,
	})
	if errors.Is(err, service.ErrDuplicateEmail) {
		log.Warn("Email already registered", zap.String("email", req.Email))
		prometheus.RecordAuthError("duplicate_email")
		return echo.NewHTTPError(http.StatusConflict, "Email already registered")
	}
	if err != nil {
		return failure(c, err, "User not found")
	}

	log.Info("User registered", zap.Uint("user_id", user.ID), zap.String("email", user.Email))
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()

	var req loginRequest
	if err := bindAndValidate(c, &req, "Missing email or password"); err != nil {
		prometheus.RecordAuthError("invalid_request")
		return err
	}

	token, user, err := h.Auth.Login(c.Request().Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		log.Warn("Login rejected", zap.String("email", req.Email))
		prometheus.RecordAuthError("invalid_credentials")
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrInactiveAccount):
		log.Warn("Login for inactive account", zap.String("email", req.Email))
		prometheus.RecordAuthError("inactive_account")
		return echo.NewHTTPError(http.StatusForbidden, "User account is inactive")
	case err != nil:
		prometheus.RecordAuthError("internal")
		return failure(c, err, "User not found")
	}

	log.Info("User logged in", zap.Uint("user_id", user.ID))
	return c.JSON(http.StatusOK, echo.Map{
		"message":      "Login successful",
		"access_token": token,
		"token_type":   "Bearer",
		"user":         user,
	})
}

func (h *AuthHandler) GetProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	user, err := h.Users.FindByID(c.Request().Context(), userID)
	if err != nil {
		return failure(c, err, "User not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req repository.ProfilePatch
	if err := bindAndValidate(c, &req, "Missing required fields"); err != nil {
		return err
	}

	user, err := h.Users.UpdateProfile(c.Request().Context(), userID, req)
	if err != nil {
		return failure(c, err, "User not found")
	}

	logger.FromContext(c).Info("Profile updated")
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Profile updated successfully",
		"user":    user,
	})
}

func (h *AuthHandler) ChangePassword(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := bindAndValidate(c, &req, "Missing required fields"); err != nil {
		return err
	}

	err = h.Auth.ChangePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword)
	if errors.Is(err, service.ErrInvalidCredentials) {
		prometheus.RecordAuthError("invalid_password")
		return echo.NewHTTPError(http.StatusUnauthorized, "Current password is incorrect")
	}
	if err != nil {
		return failure(c, err, "User not found")
	}

	logger.FromContext(c).Info("Password changed")
	return c.JSON(http.StatusOK, echo.Map{"message": "Password changed successfully"})
}

// DeleteAccount removes the caller's account and everything it owns.
func (h *AuthHandler) DeleteAccount(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.Users.Delete(c.Request().Context(), userID); err != nil {
		return failure(c, err, "User not found")
	}

	logger.FromContext(c).Info("Account deleted")
	prometheus.RecordOperation("user", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Account deleted successfully"})
}
