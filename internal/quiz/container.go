package quiz

import (
	"gorm.io/gorm"

	"github.com/1Kunalvats9/teen-titans-backend/internal/module"
)

type QuizContainer struct {
	Handler *Handler
	Service QuizService
	Repo    QuizRepository
}

func NewQuizContainer(db *gorm.DB, moduleRepo module.ModuleRepository) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, moduleRepo)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
