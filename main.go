package main

import (
	"log"
	"os"

	"barberchat/internal/api"
	"barberchat/internal/config"
	"barberchat/internal/service/ai"
	"barberchat/internal/service/assistant"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfgPath := os.Getenv("BARBERCHAT_CONFIG")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	gateway, err := ai.NewService(cfg)
	if err != nil {
		log.Fatalf("init llm gateway: %v", err)
	}
	sessions := assistant.NewManager(gateway)
	handlers := api.NewHandler(sessions)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))
	handlers.RegisterRoutes(router)

	addr := cfg.BasicConfig.ServerAddress
	if addr == "" {
		addr = ":8000"
	}

	log.Printf("serving on %s with provider %s", addr, cfg.Provider)
	if err := router.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
