package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/{moduleID}", h.GetModuleQuiz)
	r.Post("/{moduleID}/submit", h.SubmitAnswers)

	return r
}
