package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/ironclad/internal/app"
	"github.com/shrimpsizemoose/ironclad/internal/refresh"
)

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	flag.Parse()

	service, err := app.NewService(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to load config: %v", err)
	}
	defer service.Close()

	r, err := refresh.New(service)
	if err != nil {
		logger.Error.Fatalf("Failed to initialize refresher: %v", err)
	}
	r.Start()
	defer r.Stop()

	logger.Info.Printf("Refreshing sheets on %q", service.Config.Refresh.Schedule)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info.Println("Refresher stopped")
}
