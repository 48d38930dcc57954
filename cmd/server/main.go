package main

import (
	"log"
	"time"

	"github.com/jengzang/geopick-backend-go/internal/api"
	"github.com/jengzang/geopick-backend-go/internal/config"
	"github.com/jengzang/geopick-backend-go/internal/database"
	"github.com/jengzang/geopick-backend-go/internal/dataset"
	"github.com/jengzang/geopick-backend-go/internal/repository"
	"github.com/jengzang/geopick-backend-go/internal/resolver"
	"github.com/jengzang/geopick-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	records, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		log.Fatal("Failed to load dataset:", err)
	}

	var res resolver.Resolver
	if cfg.ResolverURL != "" {
		res = resolver.NewHTTPResolver(cfg.ResolverURL, 5*time.Second)
	} else {
		log.Printf("RESOLVER_URL not set, dynamic minting disabled")
	}

	repo := repository.NewFingerprintRepository(database.GetDB())
	rounds := service.NewRoundService(records, res, repo, cfg.RNGSeed)

	router := api.SetupRouter(cfg, rounds)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
