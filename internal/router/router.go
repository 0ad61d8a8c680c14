package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/1Kunalvats9/teen-titans-backend/internal/auth"
	"github.com/1Kunalvats9/teen-titans-backend/internal/generation"
	"github.com/1Kunalvats9/teen-titans-backend/internal/middlewares"
	"github.com/1Kunalvats9/teen-titans-backend/internal/module"
	"github.com/1Kunalvats9/teen-titans-backend/internal/quiz"
	"github.com/1Kunalvats9/teen-titans-backend/internal/user"
)

type RouterConfig struct {
	UserHandler       *user.Handler
	ModuleHandler     *module.Handler
	QuizHandler       *quiz.Handler
	GenerationHandler *generation.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/modules", module.Routes(cfg.ModuleHandler))
		r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
		r.Mount("/generate", generation.Routes(cfg.GenerationHandler))
	})

	return r
}
