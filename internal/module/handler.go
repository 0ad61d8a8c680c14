package module

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
	service ModuleService
}

func NewHandler(s ModuleService) *Handler {
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

func moduleIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

func (h *Handler) GetModule(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := requesterID(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := moduleIDParam(r)
	if err != nil {
		http.Error(w, "invalid module id", http.StatusBadRequest)
		return
	}

	m, err := h.service.GetModule(r.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrModuleNotFound):
			http.Error(w, "module not found", http.StatusNotFound)
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		default:
			log.WithError(err).Error("Failed to fetch module")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, m)
}

func (h *Handler) ListOwnModules(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := requesterID(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	modules, err := h.service.ListOwn(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to list own modules")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, modules)
}

func (h *Handler) ListPublicModules(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	modules, err := h.service.ListPublic(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list public modules")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, modules)
}

func (h *Handler) UpdateVisibility(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := requesterID(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := moduleIDParam(r)
	if err != nil {
		http.Error(w, "invalid module id", http.StatusBadRequest)
		return
	}

	var dto UpdateVisibilityDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	m, err := h.service.SetVisibility(r.Context(), id, userID, dto.IsPublic)
	if err != nil {
		switch {
		case errors.Is(err, ErrModuleNotFound):
			http.Error(w, "module not found", http.StatusNotFound)
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		default:
			log.WithError(err).Error("Failed to update module visibility")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, m)
}

func (h *Handler) DeleteModule(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := requesterID(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := moduleIDParam(r)
	if err != nil {
		http.Error(w, "invalid module id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, ErrModuleNotFound):
			http.Error(w, "module not found", http.StatusNotFound)
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		default:
			log.WithError(err).Error("Failed to delete module")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
