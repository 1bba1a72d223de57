package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/charmbracelet/fang"

	"github.com/macropower/pagedots/internal/cli"
	"github.com/macropower/pagedots/pkg/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := fang.Execute(ctx, cli.NewRootCmd(),
		fang.WithVersion(version.Summary()),
		fang.WithCommit(version.Revision),
		fang.WithErrorHandler(cli.ErrorHandler),
		fang.WithColorSchemeFunc(cli.ColorSchemeFunc),
	)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
