package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/app"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/cli"
	"github.com/dmitrijs2005/fleetkeeper/internal/client/config"
	"github.com/dmitrijs2005/fleetkeeper/internal/logging"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	core, err := app.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer core.Close()

	if err := core.Load(ctx); err != nil {
		logger.Error(ctx, "startup load failed", "error", err)
	}

	cli.NewApp(core).Run(ctx)

}
