package main

import (
	"log"

	"backend/configs"
	"backend/middlewares"
	"backend/routes"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if err := configs.SeedAdmin(cfg.AdminUsername, cfg.AdminPassword); err != nil {
			log.Fatalf("seed admin: %v", err)
		}
	}
	if err := configs.SeedTables(); err != nil {
		log.Fatalf("seed tables: %v", err)
	}
	if err := configs.SeedMenus(); err != nil {
		log.Fatalf("seed menus: %v", err)
	}

	hub := ws.NewHub(cfg.JWTSecret)
	go hub.Run()

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Static("/uploads", cfg.UploadDir)

	orderService := routes.RegisterRoutes(r, configs.DB(), cfg, hub)

	sweeper := services.NewExpirySweeper(orderService, cfg.PaymentSweepInterval)
	go sweeper.Run()

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
