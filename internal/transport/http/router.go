package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/njprem/discover-zimbabwe/internal/service"
)

type RouterOptions struct {
	AllowOrigins []string
	Logger       *zap.Logger
	Sessions     *service.SessionStore
	Metrics      *Metrics
}

func NewRouter(opts RouterOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	allowCredentials := true
	for _, origin := range opts.AllowOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	if opts.Sessions != nil {
		e.Use(AttachSession(opts.Sessions))
	}
	registerLogging(e, logger.Named("http"))
	if opts.Metrics != nil {
		e.Use(opts.Metrics.Middleware())
	}

	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: opts.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderOrigin,
			echo.HeaderXRequestedWith,
			echo.HeaderXRequestID,
		},
		AllowCredentials: allowCredentials,
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"ok": true})
	})
	return e
}
