package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"taskboard/cmd/taskboard/commands"
	"taskboard/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := commands.NewRootCmd().ExecuteContext(ctx)

	stop()
	log.Sync()
	if err != nil {
		os.Exit(1)
	}
}
