package app

import (
	"context"
	"os"
)

// Run executes the full pipeline with cfg, logging progress to stdout.
func Run(ctx context.Context, cfg Config, debug bool) (Summary, error) {
	logger := NewLogger(os.Stdout, debug)
	svc := NewService(cfg, logger, os.Stdout)
	return svc.Run(ctx)
}
