package main

import (
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/joho/godotenv"

	"github.com/1Kunalvats9/teen-titans-backend/internal/container"
	"github.com/1Kunalvats9/teen-titans-backend/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	c := container.New()

	handler := router.New(router.RouterConfig{
		UserHandler:       c.UserContainer.Handler,
		ModuleHandler:     c.ModuleContainer.Handler,
		QuizHandler:       c.QuizContainer.Handler,
		GenerationHandler: c.GenerationContainer.Handler,
	})

	// Runs as a Lambda behind API Gateway in production, as a plain HTTP
	// server locally.
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(handler)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
