package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-analyzer/api/http/handlers"
)

// Handlers bundles everything Register mounts.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Health   *handlers.HealthHandler
	Resume   *handlers.ResumeHandler
	Analysis *handlers.AnalysisHandler
	Catalog  *handlers.CatalogHandler
}

// Register wires all HTTP routes onto given Fiber app.
// authMW guards analysis and catalog routes; nil leaves them open.
func Register(app *fiber.App, h Handlers, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	a := v1.Group("/auth")
	a.Post("/token", h.Auth.Token)

	protected := []fiber.Handler{}
	if authMW != nil {
		protected = append(protected, authMW)
	}
	with := func(handler fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, protected...), handler)
	}

	// Resume analysis
	rg := v1.Group("/resume")
	rg.Post("/analyze", with(h.Resume.Analyze)...)

	v1.Post("/analyses", with(h.Analysis.Create)...)

	cg := v1.Group("/catalog")
	cg.Get("/skills", with(h.Catalog.Skills)...)
	cg.Get("/sections", with(h.Catalog.Sections)...)
}
