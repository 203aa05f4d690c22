package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/mamadbah2/lawncare/internal/cli"
	"github.com/mamadbah2/lawncare/internal/config"
	"github.com/mamadbah2/lawncare/internal/service/planner"
	"github.com/mamadbah2/lawncare/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// The CLI only surfaces warnings; query output goes to stdout.
	baseLogger, err := logger.New("warn")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = baseLogger.Sync() }()

	svc := planner.NewService(cfg.Planner, logger.Named(baseLogger, "svc.planner"))
	if err := cli.NewRootCommand(svc).Execute(); err != nil {
		os.Exit(1)
	}
}
