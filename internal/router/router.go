package router

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"staffdesk/internal/auth"
	"staffdesk/internal/handler"
	"staffdesk/internal/metrics"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	employeeHandler *handler.EmployeeHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(requestMetrics(m))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(20))))

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// Secured routes. The cookie is listed first so it takes precedence
	// over the Authorization header when both are present.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:access_token,header:" + echo.HeaderAuthorization,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.Validate(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid token"})
		},
	}))

	secured.POST("/logout", authHandler.Logout)
	secured.GET("/auth/me", userHandler.Me)

	secured.POST("/settings/name", userHandler.SetName)
	secured.POST("/settings/surname", userHandler.SetSurname)
	secured.POST("/settings/email", userHandler.SetEmail)

	secured.POST("/employees", employeeHandler.Add)
	secured.GET("/employees", employeeHandler.List)
	secured.GET("/employees/search", employeeHandler.Search)
	secured.GET("/employees/by-name/:name", employeeHandler.GetByName)
	secured.DELETE("/employees/:id", employeeHandler.Delete)
}

// requestMetrics records per-route request durations.
func requestMetrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			m.RequestDuration.
				WithLabelValues(c.Request().Method, c.Path(), strconv.Itoa(status)).
				Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
