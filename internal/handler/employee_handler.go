package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"staffdesk/internal/service"
)

// EmployeeHandler handles admin-scoped employee endpoints.
type EmployeeHandler struct {
	employeeService service.EmployeeService
}

// NewEmployeeHandler creates a new employee handler.
func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// CreateEmployeeRequest represents a new employee record.
type CreateEmployeeRequest struct {
	FullName   string          `json:"full_name" validate:"required"`
	Department string          `json:"department" validate:"required"`
	Position   string          `json:"position" validate:"required"`
	Email      string          `json:"email" validate:"required,email"`
	Phone      string          `json:"phone" validate:"required"`
	Salary     decimal.Decimal `json:"salary"`
}

// Add godoc
// @Summary Create an employee owned by the caller
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateEmployeeRequest true "Employee data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /employees [post]
func (h *EmployeeHandler) Add(c echo.Context) error {
	var req CreateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err)
	}

	adminID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	employee, err := h.employeeService.Create(c.Request().Context(), adminID, service.CreateEmployeeInput{
		FullName:   req.FullName,
		Department: req.Department,
		Position:   req.Position,
		Email:      req.Email,
		Phone:      req.Phone,
		Salary:     req.Salary,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":  "employee added",
		"employee": employee,
	})
}

// Delete godoc
// @Summary Delete an employee owned by the caller
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid employee id"})
	}

	adminID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	employee, err := h.employeeService.Delete(c.Request().Context(), adminID, uint(id))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "employee deleted",
		"name":    employee.FullName,
	})
}

// List godoc
// @Summary List the caller's employees
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	adminID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	employees, err := h.employeeService.List(c.Request().Context(), adminID)
	if err != nil {
		return fail(c, err)
	}

	if len(employees) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "no employees found"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "success",
		"count":     len(employees),
		"employees": employees,
	})
}

// GetByName godoc
// @Summary Find the caller's employee by exact full name
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param name path string true "Full name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /employees/by-name/{name} [get]
func (h *EmployeeHandler) GetByName(c echo.Context) error {
	name := c.Param("name")
	if strings.TrimSpace(name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "name is required"})
	}

	adminID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	employee, err := h.employeeService.GetByName(c.Request().Context(), adminID, name)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":  "success",
		"employee": employee,
	})
}

// Search godoc
// @Summary Search the caller's employees by name substring
// @Tags employees
// @Produce json
// @Security BearerAuth
// @Param name query string true "Name fragment"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /employees/search [get]
func (h *EmployeeHandler) Search(c echo.Context) error {
	query := c.QueryParam("name")
	if strings.TrimSpace(query) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "name query is required"})
	}

	adminID, ok := currentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	employees, err := h.employeeService.Search(c.Request().Context(), adminID, query)
	if err != nil {
		return fail(c, err)
	}

	message := "success"
	if len(employees) == 0 {
		message = "no employees found"
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   message,
		"count":     len(employees),
		"employees": employees,
	})
}
