package routes

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"talent-align/internal/delivery/http/handler"
	"talent-align/internal/usecase"
	"talent-align/internal/ws"
)

type Registry struct {
	health        *handler.HealthHandler
	organizations *handler.OrganizationHandler
	jobFit        *handler.JobFitHandler
	actions       *handler.ActionHandler
	ws            *ws.Handler
}

type Usecases struct {
	Organizations usecase.OrganizationUsecase
	JobFit        usecase.JobFitUsecase
	Actions       usecase.ActionUsecase
}

func NewRegistry(uc Usecases, wsHandler *ws.Handler) *Registry {
	return &Registry{
		health:        handler.NewHealthHandler(),
		organizations: handler.NewOrganizationHandler(uc.Organizations),
		jobFit:        handler.NewJobFitHandler(uc.JobFit),
		actions:       handler.NewActionHandler(uc.Actions),
		ws:            wsHandler,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerOps(app)
	r.registerAPI(app)
	if r.ws != nil {
		r.ws.RegisterRoutes(app)
	}
}

func (r *Registry) registerOps(app *fiber.App) {
	r.health.RegisterRoutes(app)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	r.health.RegisterRoutes(api)
	r.organizations.RegisterRoutes(api)
	r.jobFit.RegisterRoutes(api)
	r.actions.RegisterRoutes(api)
}
