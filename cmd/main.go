package main

import (
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/insurewise/policy-portal/internal/app"
	"github.com/insurewise/policy-portal/internal/config"
	"github.com/insurewise/policy-portal/internal/routes"
	"github.com/insurewise/policy-portal/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()
	defer cfg.Close()

	application := app.NewApp(cfg)
	defer application.Close()

	router := routes.NewRouter(application)

	var allowedOrigins []string
	if cfg.AppUrl != "" {
		allowedOrigins = append(allowedOrigins, cfg.AppUrl)
	}

	co := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           co.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	utils.Logger.Infof("Starting %s on port: %s (store: %s)", cfg.AppName, cfg.AppPort, cfg.StoreURL)
	if err := srv.ListenAndServe(); err != nil {
		utils.Logger.Fatal("policy-portal failed to start:", err)
	}
}
