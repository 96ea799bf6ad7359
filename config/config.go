package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	CORS_ORIGIN string
	JWT_SECRET  string

	CLOUDINARY_URL    string
	CLOUDINARY_FOLDER string

	UPLOAD_DIR string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	CORS_ORIGIN = mustEnv("CORS_ORIGIN")
	JWT_SECRET = mustEnv("JWT_SECRET")

	CLOUDINARY_URL = mustEnv("CLOUDINARY_URL")
	CLOUDINARY_FOLDER = getEnv("CLOUDINARY_FOLDER", "Assets")

	UPLOAD_DIR = getEnv("UPLOAD_DIR", "uploads")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
