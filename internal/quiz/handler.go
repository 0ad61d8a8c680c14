package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/1Kunalvats9/teen-titans-backend/internal/auth"
	"github.com/1Kunalvats9/teen-titans-backend/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func requesterID(r *http.Request) (uuid.UUID, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) GetModuleQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := requesterID(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	moduleID, err := uuid.Parse(chi.URLParam(r, "moduleID"))
	if err != nil {
		http.Error(w, "invalid module id", http.StatusBadRequest)
		return
	}

	q, err := h.service.GetByModule(r.Context(), moduleID, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrQuizNotFound):
			http.Error(w, "quiz not found", http.StatusNotFound)
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		default:
			log.WithError(err).Error("Failed to fetch module quiz")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) SubmitAnswers(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := requesterID(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	moduleID, err := uuid.Parse(chi.URLParam(r, "moduleID"))
	if err != nil {
		http.Error(w, "invalid module id", http.StatusBadRequest)
		return
	}

	var dto SubmitAnswersDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body for quiz submission")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if len(dto.Answers) == 0 {
		http.Error(w, "answers required", http.StatusBadRequest)
		return
	}

	result, err := h.service.SubmitAnswers(r.Context(), moduleID, userID, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrQuizNotFound):
			http.Error(w, "quiz not found", http.StatusNotFound)
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		default:
			log.WithError(err).Error("Failed to score quiz submission")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, result)
}
