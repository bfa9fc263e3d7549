package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/configs"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/middlewares"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/pkg/payments"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/routes"
	"github.com/AiFlowTools/UnderParPilotEmployeeDashboard/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate + seed
	configs.SetupDatabase()
	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedDemoCourse(); err != nil {
		log.Fatalf("seed course failed: %v", err)
	}

	// realtime order stream
	hub := ws.NewOrderHub()
	go hub.Run()

	// payment provider
	provider := payments.NewStripeProvider(cfg.StripeSecretKey)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, hub, provider)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
