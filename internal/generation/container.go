package generation

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/1Kunalvats9/teen-titans-backend/internal/persona"
	"github.com/1Kunalvats9/teen-titans-backend/internal/user"
)

type GenerationContainer struct {
	Handler *Handler
	Service GenerationService
}

func NewGenerationContainer(db *gorm.DB, userRepo user.UserRepository) *GenerationContainer {
	ctx := context.Background()
	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		log.Fatalf("failed to initialize Gemini provider: %v", err)
	}

	committer := NewCommitter(db)
	resolver := persona.NewResolver(userRepo)
	service := NewService(provider, resolver, committer)
	handler := NewHandler(service)

	return &GenerationContainer{
		Handler: handler,
		Service: service,
	}
}
