package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"go.uber.org/zap"

	"talent-align/internal/config"
	"talent-align/internal/delivery/http/middleware"
	"talent-align/internal/delivery/http/routes"
	"talent-align/internal/ws"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	errMw := middleware.NewErrorMiddleware(c.Log)

	f := fiber.New(fiber.Config{
		AppName:      c.Config.App.AppName,
		ErrorHandler: errMw.Handler(),
	})

	registerGlobalMiddleware(f, c, errMw)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap wires the container and HTTP app. The returned cleanup stops the
// websocket hub and releases the stores.
func Bootstrap(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go c.Hub.Run(hubCtx)

	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return New(c), cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container, errMw *middleware.ErrorMiddleware) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Log).Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: c.Config.App.CORSAllowOrigins,
		AllowMethods: []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions},
		AllowHeaders: []string{fiber.HeaderContentType},
	}))
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	routes.NewRegistry(routes.Usecases{
		Organizations: c.Organizations,
		JobFit:        c.JobFit,
		Actions:       c.Actions,
	}, ws.NewHandler(c.Hub, c.Log)).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
