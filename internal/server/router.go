package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"inventaris/internal/auth"
	catHandler "inventaris/internal/category/handler"
	dashHandler "inventaris/internal/dashboard/handler"
	"inventaris/internal/i18n"
	itemHandler "inventaris/internal/item/handler"
)

type Handlers struct {
	Item      *itemHandler.ItemHandler
	Category  *catHandler.CategoryHandler
	Dashboard *dashHandler.DashboardHandler
}

// NewRouter wires the HTTP surface. Session mechanics live upstream; this
// router only consumes the forwarded identity.
func NewRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(auth.Middleware)
	r.Use(i18n.Middleware)

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/dashboard", h.Dashboard.Summary)

	r.Route("/items", func(r chi.Router) {
		r.Get("/", h.Item.List)
		r.Post("/", h.Item.Create)
		r.Get("/{id}", h.Item.Get)
		r.Put("/{id}", h.Item.Update)
		r.Delete("/{id}", h.Item.Delete)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.Category.List)
		r.Post("/", h.Category.Create)
		r.Put("/{id}", h.Category.Update)
		r.Delete("/{id}", h.Category.Delete)
	})

	return r
}
