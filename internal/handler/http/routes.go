package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	router.Use(middleware.Timeout(h.requestTimeout))

	router.Route("/api", func(api chi.Router) {
		// storage setup
		api.Get("/status", h.status)
		api.Get("/version", h.version)
		api.Post("/init", h.initStorage)

		api.Group(func(r chi.Router) {
			r.Use(h.checkInitialized)

			// routes without authorization
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)

				r.Get("/auth/me", h.me)
				r.Put("/auth/password", h.changePassword)

				r.Route("/projects", func(r chi.Router) {
					r.Get("/", h.listProjects)
					r.Post("/", h.createProject)
					r.Put("/{id}", h.updateProject)
					r.Delete("/{id}", h.deleteProject)
					r.Post("/{id}/move", h.moveProject)
					r.Post("/{id}/share", h.shareProject)
				})

				r.Route("/todos", func(r chi.Router) {
					r.Get("/", h.listTodos)
					r.Post("/", h.createTodo)
					r.Put("/{id}", h.updateTodo)
					r.Delete("/{id}", h.deleteTodo)
				})

				r.Route("/notes", func(r chi.Router) {
					r.Get("/", h.listNotes)
					r.Post("/", h.createNote)
					r.Put("/{id}", h.updateNote)
					r.Delete("/{id}", h.deleteNote)
				})

				r.Get("/dashboard/todos", h.dashboardTodos)

				r.Route("/users", func(r chi.Router) {
					r.Use(h.adminOnly)

					r.Get("/", h.listUsers)
					r.Post("/", h.createUser)
					r.Put("/{id}", h.updateUser)
					r.Delete("/{id}", h.deleteUser)
				})
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
