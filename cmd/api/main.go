package main

import (
	_ "wheelworks/docs"
	"wheelworks/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           WheelWorks Quote API
// @version         1.0
// @description     Quote intake + analytics back-office for a wheel-refurbishment business, backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
