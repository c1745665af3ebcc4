package main

import (
	"fmt"
	"os"

	"ai-energy-forecast/internal/api/handlers"
	"ai-energy-forecast/internal/api/middleware"
	"ai-energy-forecast/internal/config"
	"ai-energy-forecast/internal/forecast"
	"ai-energy-forecast/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Constants come from an optional YAML file; defaults otherwise.
	constants := model.DefaultConstants()
	if path := os.Getenv("FORECAST_CONFIG"); path != "" {
		var err error
		constants, err = config.Load(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("load config")
		}
		log.Info().Str("path", path).Msg("loaded constants overrides")
	}

	engine, err := forecast.New(constants)
	if err != nil {
		log.Fatal().Err(err).Msg("build engine")
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler())

	scenarioHandler := handlers.NewScenarioHandler(engine)
	curvesHandler := handlers.NewCurvesHandler(engine)
	matrixHandler := handlers.NewMatrixHandler(engine)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/scenario", scenarioHandler.RunScenario)
		api.POST("/scenario/compare", scenarioHandler.Compare)

		api.GET("/curves", curvesHandler.GetCurves)

		api.POST("/matrix", matrixHandler.BuildMatrix)
		api.GET("/mixes", matrixHandler.ListMixes)
		api.GET("/constants", matrixHandler.GetConstants)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
