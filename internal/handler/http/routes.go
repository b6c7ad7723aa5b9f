package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router with the full middleware chain and route table.
//
// Collection and item routes carry a trailing slash, matching the URL
// conventions the API's existing clients already use. The high_roi route is
// a static segment under sprint-metrics and must not be captured by the
// item-id pattern.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register/", h.register)
		r.Post("/api/auth/login/", h.login)
		r.Get("/ping", h.ping)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/projects", func(r chi.Router) {
			r.Get("/", h.listProjects)
			r.Post("/", h.createProject)
			r.Get("/{projectID}/", h.getProject)
			r.Put("/{projectID}/", h.replaceProject)
			r.Patch("/{projectID}/", h.updateProject)
			r.Delete("/{projectID}/", h.deleteProject)
			r.Get("/{projectID}/sprints/", h.listProjectSprints)
		})

		r.Route("/api/sprints", func(r chi.Router) {
			r.Get("/", h.listSprints)
			r.Post("/", h.createSprint)
			r.Get("/{sprintID}/", h.getSprint)
			r.Put("/{sprintID}/", h.replaceSprint)
			r.Patch("/{sprintID}/", h.updateSprint)
			r.Delete("/{sprintID}/", h.deleteSprint)
		})

		r.Route("/api/sprint-metrics", func(r chi.Router) {
			r.Get("/", h.listMetrics)
			r.Post("/", h.createMetric)
			r.Get("/high_roi/", h.listHighROIMetrics)
			r.Get("/{metricID}/", h.getMetric)
			r.Put("/{metricID}/", h.replaceMetric)
			r.Patch("/{metricID}/", h.updateMetric)
			r.Delete("/{metricID}/", h.deleteMetric)
		})

		// accounts are read-only; write verbs fall through to 405
		r.Route("/api/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Get("/{userID}/", h.getUser)
		})
	})

	return router
}
