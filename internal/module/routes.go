package module

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListOwnModules)
	r.Get("/public", h.ListPublicModules)
	r.Get("/{id}", h.GetModule)
	r.Patch("/{id}/visibility", h.UpdateVisibility)
	r.Delete("/{id}", h.DeleteModule)

	return r
}
