package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/loanmo/crm/internal/cli"
	"github.com/loanmo/crm/internal/config"
	"github.com/loanmo/crm/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
