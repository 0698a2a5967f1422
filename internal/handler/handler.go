package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"staffdesk/internal/auth"
	apperrors "staffdesk/internal/errors"
)

// currentUserID extracts the authenticated user's ID from the verified
// token claims placed in the context by the JWT middleware.
func currentUserID(c echo.Context) (uint, bool) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok || claims.UserID == 0 {
		return 0, false
	}
	return claims.UserID, true
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid token"})
}

// fail maps a service error to its HTTP shape. Every error body carries
// a message plus the raw failure text.
func fail(c echo.Context, err error) error {
	he := apperrors.MapErrorToHTTP(err)
	return c.JSON(he.StatusCode, apperrors.ErrorResponse{
		Message: he.Message,
		Error:   err.Error(),
	})
}

// badRequest reports which fields failed validation.
func badRequest(c echo.Context, err error) error {
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				fields[fe.Field()] = fe.Field() + " is required"
			case "email":
				fields[fe.Field()] = fe.Field() + " must be a valid email"
			case "min":
				fields[fe.Field()] = fe.Field() + " must be at least " + fe.Param() + " characters"
			default:
				fields[fe.Field()] = fe.Field() + " is invalid"
			}
		}
	}
	if len(fields) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	return c.JSON(http.StatusBadRequest, echo.Map{
		"message": "validation failed",
		"errors":  fields,
	})
}
