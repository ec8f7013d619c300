package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dlevasseur/banque/internal/buildinfo"
	"github.com/dlevasseur/banque/internal/cli"
	"github.com/dlevasseur/banque/internal/config"
	"github.com/dlevasseur/banque/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
