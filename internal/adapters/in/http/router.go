package http

import (
	"context"
	"log/slog"
	"net/http"

	"campusdelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/cors"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const BaseURL = "/api/v1"

type RouterOptions struct {
	OpenAPI        []byte
	AllowedOrigins []string
	Logger         *slog.Logger
}

// NewRouter wires the echo instance: CORS, request logging, OpenAPI request
// validation, the actor guards, Swagger UI and the health check.
func NewRouter(ctx context.Context, si ServerInterface, tokens *Tokens, opts RouterOptions) (*echo.Echo, error) {
	logger := opts.Logger.With("component", "http")

	doc, err := LoadOpenAPI(ctx, opts.OpenAPI)
	if err != nil {
		return nil, err
	}
	validateRequest, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = RegisterSwagger(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Pre(echo.WrapMiddleware(cors.New(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{echo.HeaderAuthorization, echo.HeaderContentType},
		AllowCredentials: true,
	}).Handler))
	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(validateRequest)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlersWithBaseURL(e, si, BaseURL, Guards{
		Customer: tokens.Require(kernel.ActorCustomer),
		Rider:    tokens.Require(kernel.ActorRider),
		Admin:    tokens.Require(kernel.ActorAdmin),
	})

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
			}
			if v.Error != nil {
				logger.WarnContext(c.Request().Context(), "request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	})
}
