package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Apurer/afterschool-api/internal/app/api"
)

func main() {
	cfg, err := api.LoadConfig()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := api.Run(context.Background(), cfg); err != nil {
		slog.Error("After School Classes API stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
