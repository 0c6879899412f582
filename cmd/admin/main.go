package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/fx"

	"student-control/internal/app"
)

func main() {
	var cli commandLine
	fxApp := fx.New(
		app.Core,
		fx.NopLogger,
		fx.Populate(
			&cli.users,
			&cli.promotions,
			&cli.reports,
			&cli.backups,
			&cli.log,
		),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := fxApp.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	err := cli.run(os.Args)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer stopCancel()
	_ = fxApp.Stop(stopCtx)

	if err != nil {
		if err != errHelp {
			fmt.Fprintf(os.Stderr, "\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
