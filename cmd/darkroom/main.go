package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/wraxau/AC-laba3/internal/cli"
	"github.com/wraxau/AC-laba3/internal/util"
)

func main() {
	// First signal cancels the run so it can drain and report,
	// second one forces an exit
	ctx, cancel := util.WithSignals(context.Background())
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
