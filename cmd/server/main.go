package main

import (
	"log"
	"net/http"
	"os"

	"github.com/AK301382/maser/internal/config"
	"github.com/AK301382/maser/internal/logger"
	"github.com/AK301382/maser/internal/middleware"
	"github.com/AK301382/maser/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Setup Gin router
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + port()
	log.Printf("🚀 Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}
