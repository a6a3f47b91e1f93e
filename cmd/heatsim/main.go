// SPDX-License-Identifier: MIT

// Command heatsim runs, serves and compares 2D heat-diffusion simulations.
//
//	heatsim run --n 101 --eps 0.2 --iterations 2700 --method sparse
//	heatsim serve --addr :9000
//	heatsim compare --n 31 --eps 0.2 --steps 200
package main

import (
	"context"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(log.StandardLogger()).ExecuteContext(ctx); err != nil {
		log.WithError(err).Error("heatsim failed")
		os.Exit(1)
	}
}
