package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/Rakhulsr/contoso-pizza/app/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.RunCli(ctx, os.Args)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
