package main

import (
	"fmt"
	"log"

	"salonpos-backend/config"
	"salonpos-backend/routes"
	"salonpos-backend/services"
	"salonpos-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

func main() {
	cfg := config.Load()
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// All data lives in memory; the store is seeded once and read-only from
	// here on.
	s := store.Seed()

	if cfg.Closeout.Enabled {
		closeout := services.NewCloseoutService(s, cfg.Closeout.Schedule)
		if err := closeout.StartScheduler(); err != nil {
			log.Printf("Failed to start closeout scheduler: %v", err)
		}
	}

	r := routes.SetupRouter(cfg, s)
	printRoutes(r)

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
