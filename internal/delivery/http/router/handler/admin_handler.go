package handler

import (
	"log/slog"
	"net/http"

	"toolstore/internal/delivery/http/response"
	"toolstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the user administration handlers.
type AdminHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.UserUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListUsers returns every registered user, newest first.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// UpdateAdminStatus sets the admin flag of the user named by the path email.
// An email in the body is ignored; the path wins.
func (h *AdminHandler) UpdateAdminStatus(c echo.Context) error {
	input := new(usecase.UpdateAdminStatusInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid admin status input")
	}

	user, err := h.uc.UpdateAdminStatus(c.Request().Context(), c.Param("email"), input.IsAdmin)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Admin status updated successfully")
}
