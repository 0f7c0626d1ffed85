package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Every API route is served both at the root and
// under /api.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.RealIP,
		h.withTraceID,
		withLogging,
		middleware.Recoverer,
		h.secureHeadersMiddleware(),
	)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/health", h.health)

	router.Group(h.apiRoutes)
	router.Route("/api", h.apiRoutes)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.notFound))

	return router
}

func (h *Handler) apiRoutes(r chi.Router) {
	// routes without authorization
	r.Post("/auth/register", h.register)
	r.Post("/auth/login", h.login)

	r.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/profile", h.getProfile)
		r.Patch("/profile", h.updateProfile)
		r.Delete("/profile", h.deleteProfile)

		r.Get("/todo", h.listTodos)
		r.Post("/todo", h.createTodo)
		r.Get("/todo/{id}", h.getTodo)
		r.Put("/todo/{id}", h.updateTodo)
		r.Delete("/todo/{id}", h.deleteTodo)
	})
}
