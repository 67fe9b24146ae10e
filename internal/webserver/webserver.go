package webserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/openmerch/catalogd/internal/app"
)

const (
	// ContextKeyApp carries the application context through echo handlers.
	ContextKeyApp = "catalogd_app"
)

var server *WebServer

type WebServer struct {
	root *echo.Echo
	app  *app.Application
}

// Init builds the web server singleton bound to the application context.
func Init(application *app.Application) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.Debug = application.Config().Web.Debug

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(appContextMiddleware(application))
	e.Use(requestLogger())

	server = &WebServer{root: e, app: application}
	return server
}

// Instance returns the initialized web server.
func Instance() *WebServer {
	return server
}

// Listen starts serving on the configured address and blocks.
func (s *WebServer) Listen() error {
	addr := s.app.Config().Web.Listen
	zap.S().Infof("admin api listening on %s", addr)
	return s.root.Start(addr)
}

// Root exposes the underlying echo instance (used in tests).
func (s *WebServer) Root() *echo.Echo {
	return s.root
}

func appContextMiddleware(application *app.Application) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextKeyApp, application)
			return next(c)
		}
	}
}

func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			zap.L().Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("elapsed", time.Since(start)),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)
			return err
		}
	}
}

// GetApp extracts the application context injected by the middleware.
func GetApp(c echo.Context) *app.Application {
	application, _ := c.Get(ContextKeyApp).(*app.Application)
	return application
}

// ApiGET registers a GET route on the admin API.
func ApiGET(path string, h echo.HandlerFunc) {
	server.root.GET(apiPath(path), h)
}

// ApiPOST registers a POST route on the admin API.
func ApiPOST(path string, h echo.HandlerFunc) {
	server.root.POST(apiPath(path), h)
}

// ApiPUT registers a PUT route on the admin API.
func ApiPUT(path string, h echo.HandlerFunc) {
	server.root.PUT(apiPath(path), h)
}

// ApiDELETE registers a DELETE route on the admin API.
func ApiDELETE(path string, h echo.HandlerFunc) {
	server.root.DELETE(apiPath(path), h)
}

func apiPath(path string) string {
	return fmt.Sprintf("/api%s", path)
}

// Health registers a basic liveness endpoint.
func Health() {
	server.root.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}
