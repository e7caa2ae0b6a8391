package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/leetpulse/dskit/internal/cli"
	"github.com/leetpulse/dskit/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := cli.New(os.Stderr, cli.LogInfo).Execute(ctx, os.Args[1:])
	if err == nil {
		return
	}
	if stderrors.Is(err, context.Canceled) {
		os.Exit(130) // SIGINT
	}
	fmt.Fprintln(os.Stderr, "Error:", errors.UserMessage(err))
	for _, d := range errors.Details(err) {
		fmt.Fprintln(os.Stderr, "  -", d)
	}
	os.Exit(1)
}
