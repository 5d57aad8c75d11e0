package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/signup", h.signUp)
		r.Post("/auth/signin", h.signIn)
	})

	router.Route("/users", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/me", h.getCurrentUser)
		r.Patch("/", h.editCurrentUser)
	})

	router.Route("/bookmarks", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.listBookmarks)
		r.Post("/", h.createBookmark)
		r.Get("/{id}", h.getBookmark)
		r.Patch("/{id}", h.editBookmark)
		r.Delete("/{id}", h.deleteBookmark)
	})

	return router
}
