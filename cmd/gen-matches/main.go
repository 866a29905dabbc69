// Command gen-matches submits randomized match reports to a running
// instance and verifies the resulting aggregates.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/starfest/internal/matchgen"
	"github.com/okian/starfest/pkg/logger"
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := matchgen.ParseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if err := matchgen.Run(ctx, cfg); err != nil {
		logger.Get().Error(ctx, "generator run failed", logger.Error(err))
		os.Exit(1)
	}
}
