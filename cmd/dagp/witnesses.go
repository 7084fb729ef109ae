// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dispagp/coverage"
	"github.com/katalvlaran/dispagp/witness"
)

func newWitnessesCmd() *cobra.Command {
	var c common

	cmd := &cobra.Command{
		Use:   "witnesses",
		Short: "Compute the shadow witness set of an instance as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config(cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := c.logger(cmd, cfg)
			if err != nil {
				return err
			}
			inst, err := c.load()
			if err != nil {
				return err
			}
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()

			o, err := coverage.NewOracle(ctx, inst, coverage.WithWorkers(cfg.Workers), coverage.WithLogger(logger))
			if err != nil {
				return err
			}
			sp := witness.NewShadowProvider(o, witness.WithWorkers(cfg.Workers), witness.WithLogger(logger))
			ws, err := sp.Witnesses(ctx)
			if err != nil {
				return err
			}

			return witness.Write(cmd.OutOrStdout(), ws)
		},
	}
	c.bind(cmd.Flags())

	return cmd
}
