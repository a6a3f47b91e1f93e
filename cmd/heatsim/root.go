// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/heatlab/sim"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "heatsim",
		Short:         "Finite-difference 2D heat diffusion",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := log.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			logger.SetLevel(lvl)
			logger.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "ini file with [simulation] and [impulse] sections")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "logrus level (debug, info, warn, error)")

	cmd.AddCommand(
		newRunCmd(opts, logger),
		newServeCmd(opts, logger),
		newCompareCmd(),
	)

	return cmd
}

// loadConfig returns the ini config when --config is set, defaults otherwise.
func (o *rootOptions) loadConfig() (sim.Config, error) {
	if o.configPath == "" {
		return sim.DefaultConfig(), nil
	}
	cfg, err := sim.LoadConfig(o.configPath)
	if err != nil {
		return sim.Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}
