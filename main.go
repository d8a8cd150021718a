package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/aikomment/pkg/cli"
	"github.com/secmon-lab/aikomment/pkg/utils/apperr"
)

func main() {
	ctx := context.Background()
	if err := cli.Run(ctx, os.Args); err != nil {
		// the logger configured by the CLI is installed as the slog default
		apperr.Handle(ctxlog.With(ctx, slog.Default()), err)
		os.Exit(1)
	}
}
