// Command server runs the dictionary GraphQL API.
//
// Configuration is read from CONFIG_PATH (YAML) with environment variable
// overrides; see internal/config for the full list of settings.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/hallfrida/ordasafn-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
