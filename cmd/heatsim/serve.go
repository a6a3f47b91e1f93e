// SPDX-License-Identifier: MIT

package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/heatlab/server"
)

func newServeCmd(root *rootOptions, logger *log.Logger) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Stream simulations to websocket clients on /ws",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			return server.NewServer(addr, logger).WithBaseConfig(cfg).Serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":9000", "listen address")

	return cmd
}
