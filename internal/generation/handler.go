package generation

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/1Kunalvats9/teen-titans-backend/internal/auth"
	"github.com/1Kunalvats9/teen-titans-backend/internal/config"
)

const minTopicLength = 3

type Handler struct {
	service GenerationService
}

func NewHandler(s GenerationService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateModule(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("Unauthenticated module generation attempt")
		config.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	creatorID, err := uuid.Parse(claims.UserID)
	if err != nil {
		config.JSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto GenerateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body for module generation")
		config.JSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dto.Topic = strings.TrimSpace(dto.Topic)
	if utf8.RuneCountInString(dto.Topic) < minTopicLength {
		config.JSONError(w, http.StatusBadRequest, "Topic must be at least 3 characters long")
		return
	}

	moduleID, err := h.service.GenerateModule(r.Context(), creatorID, dto)
	if err != nil {
		log.WithError(err).Errorf("Module generation failed for topic %q", dto.Topic)
		config.JSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	config.JSON(w, http.StatusCreated, GenerateResponseDTO{ModuleID: moduleID.String()})
}
