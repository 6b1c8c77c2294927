package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"openship/internal/cli/graphcmd"
	"openship/internal/platform/config"
	"openship/internal/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	root := graphcmd.NewRootCmd(graphcmd.Options{Cfg: config.New().Prefix("OPENSHIP_")})
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Get().Error().Err(err).Msg("openship-graph failed")
		os.Exit(graphcmd.ExitCode(err))
	}
}
