package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/geopick-backend-go/internal/config"
	"github.com/jengzang/geopick-backend-go/internal/handler"
	"github.com/jengzang/geopick-backend-go/internal/middleware"
	"github.com/jengzang/geopick-backend-go/internal/service"
)

// SetupRouter wires the HTTP surface
func SetupRouter(cfg *config.Config, rounds *service.RoundService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Location selection engine is running",
		})
	})

	roundHandler := handler.NewRoundHandler(rounds)
	authHandler := handler.NewAuthHandler(cfg.JWTSecret)

	api := r.Group("/api/v1")
	{
		api.POST("/auth/token", authHandler.IssueToken)
		api.GET("/provinces", middleware.Auth(cfg.JWTSecret), roundHandler.ListProvinces)

		sessions := api.Group("/sessions")
		sessions.Use(middleware.Auth(cfg.JWTSecret))
		{
			sessions.POST("", roundHandler.CreateSession)
			sessions.DELETE("/:id", roundHandler.CloseSession)

			sessions.POST("/:id/round/static", roundHandler.SelectStatic)
			sessions.POST("/:id/round/dynamic", roundHandler.MintDynamic)
			sessions.POST("/:id/round/record", roundHandler.RecordDynamic)

			sessions.GET("/:id/enriched", roundHandler.GetEnriched)
			sessions.GET("/:id/eligible-provinces", roundHandler.GetEligibleProvinces)
			sessions.GET("/:id/anti-repeat", roundHandler.GetAntiRepeat)
			sessions.GET("/:id/mint-metrics", roundHandler.GetMintMetrics)

			sessions.POST("/:id/simulate", roundHandler.Simulate)
		}
	}

	return r
}
