package main

import (
	"context"
	"os/signal"
	"syscall"

	"cookenu/internal/client/cli"
	"cookenu/internal/client/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)
	app.Run(ctx)
}
