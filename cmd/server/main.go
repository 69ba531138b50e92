package main

import (
	"flag"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/ironclad/internal/app"
	"github.com/shrimpsizemoose/ironclad/internal/handlers"
)

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	service, err := app.NewService(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to load config: %v", err)
	}
	defer service.Close()

	mux := http.NewServeMux()
	handlers.NewHandler(service).Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	logger.Info.Printf("Starting ironclad server on %s", service.Config.Server.Port)
	logger.Debug.Printf("Submissions from %s", service.Sources.Submissions.Name())
	if service.Sources.Mileage == nil {
		logger.Debug.Println("No distance sheet configured")
	}
	if err := http.ListenAndServe(service.Config.Server.Port, mux); err != nil {
		logger.Error.Fatalf("Ironclad server failed: %v", err)
	}
}
