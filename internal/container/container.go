package container

import (
	"context"
	"log"
	"os"

	"github.com/1Kunalvats9/teen-titans-backend/internal/auth"
	"github.com/1Kunalvats9/teen-titans-backend/internal/config"
	"github.com/1Kunalvats9/teen-titans-backend/internal/generation"
	"github.com/1Kunalvats9/teen-titans-backend/internal/module"
	"github.com/1Kunalvats9/teen-titans-backend/internal/quiz"
	"github.com/1Kunalvats9/teen-titans-backend/internal/user"
)

type Container struct {
	UserContainer       *user.UserContainer
	ModuleContainer     *module.ModuleContainer
	QuizContainer       *quiz.QuizContainer
	GenerationContainer *generation.GenerationContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&module.Module{},
		&module.Step{},
		&quiz.Quiz{},
		&quiz.Question{},
		&quiz.Option{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	moduleContainer := module.NewModuleContainer(config.DB)
	quizContainer := quiz.NewQuizContainer(config.DB, moduleContainer.Repo)
	generationContainer := generation.NewGenerationContainer(config.DB, userContainer.Repo)

	return &Container{
		UserContainer:       userContainer,
		ModuleContainer:     moduleContainer,
		QuizContainer:       quizContainer,
		GenerationContainer: generationContainer,
	}
}
