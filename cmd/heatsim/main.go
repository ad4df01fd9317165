// Command heatsim runs lumped-node heat-conduction scenarios.
//
//	heatsim run scenario.yaml --plot day.png --csv day.csv
//	heatsim inspect scenario.yaml
//	heatsim steady scenario.yaml
//	heatsim house --preset solar --oat 305
//	heatsim materials
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "heatsim:", err)
		os.Exit(1)
	}
}
