package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/openshelf/circulation/internal/app"
	"github.com/openshelf/circulation/internal/cli"
)

func main() {
	root := cli.NewRootCmd()

	// fang wraps cobra with completions, manpages and --version handling.
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(app.Version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
