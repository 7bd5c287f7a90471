package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stockmaster/config"
	"stockmaster/routes"
	"stockmaster/store"
)

func main() {
	config.Load()

	// Initialize the persisted application state.
	if err := store.Init(config.DBPath()); err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowOrigins(),
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Register the API routes.
	routes.RegisterRoutes(router)

	port := config.Port()
	log.Printf("Starting server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
