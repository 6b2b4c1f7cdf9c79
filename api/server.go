package api

import (
	"log"
	"os"

	"Postboard/api/controllers"
	"Postboard/api/seed"

	"github.com/joho/godotenv"
)

var server = controllers.Server{}

func Run() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, reading configuration from the environment")
	}

	server.Initialize(
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_NAME"),
	)

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		seed.Load(server.DB)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8888"
	}
	server.Run(":" + port)
}
