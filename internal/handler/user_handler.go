package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"staffdesk/internal/model"
	"staffdesk/internal/service"
)

// UserHandler handles profile reads and single-field settings updates.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// NameRequest updates the profile name.
type NameRequest struct {
	Name string `json:"name" validate:"required"`
}

// SurnameRequest updates the profile surname.
type SurnameRequest struct {
	Surname string `json:"surname" validate:"required"`
}

// EmailRequest updates the profile email.
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Me godoc
// @Summary Current user's profile
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	user, err := h.userService.Profile(c.Request().Context(), userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "user found",
		"user":    model.NewProfile(user),
	})
}

// SetName godoc
// @Summary Update the profile name
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body NameRequest true "New name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /settings/name [post]
func (h *UserHandler) SetName(c echo.Context) error {
	var req NameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err)
	}

	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	user, err := h.userService.UpdateName(c.Request().Context(), userID, req.Name)
	if err != nil {
		return fail(c, err)
	}

	return updatedProfile(c, user)
}

// SetSurname godoc
// @Summary Update the profile surname
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SurnameRequest true "New surname"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /settings/surname [post]
func (h *UserHandler) SetSurname(c echo.Context) error {
	var req SurnameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err)
	}

	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	user, err := h.userService.UpdateSurname(c.Request().Context(), userID, req.Surname)
	if err != nil {
		return fail(c, err)
	}

	return updatedProfile(c, user)
}

// SetEmail godoc
// @Summary Update the profile email
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EmailRequest true "New email"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /settings/email [post]
func (h *UserHandler) SetEmail(c echo.Context) error {
	var req EmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err)
	}

	userID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	user, err := h.userService.UpdateEmail(c.Request().Context(), userID, req.Email)
	if err != nil {
		return fail(c, err)
	}

	return updatedProfile(c, user)
}

func updatedProfile(c echo.Context, user *model.User) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "profile updated",
		"user":    model.NewProfile(user),
	})
}
