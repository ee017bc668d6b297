package main

import (
	"context"
	"os"

	"github.com/pterm/pterm"

	"github.com/honeycarbs/vacancy-search/internal/app"
	"github.com/honeycarbs/vacancy-search/pkg/shutdown"
)

func main() {
	ctx, stop := shutdown.Context(context.Background(), nil)
	defer stop()

	c := &cli{
		in:         os.Stdin,
		out:        os.Stdout,
		initialize: app.InitializeResources,
	}

	if err := newRootCmd(c).ExecuteContext(ctx); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
