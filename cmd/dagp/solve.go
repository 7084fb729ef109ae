// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dispagp/agp"
	"github.com/katalvlaran/dispagp/metrics"
)

func newSolveCmd() *cobra.Command {
	var c common
	var upper int64

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Maximise the minimum geodesic distance of a covering guard set",
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

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector())
			rec := metrics.New(reg, cfg.Backend)
			if cfg.MetricsAddr != "" {
				stop := serveMetrics(cfg.MetricsAddr, reg, logger)
				defer stop()
			}

			s, err := agp.NewSolver(ctx, inst, cfg, agp.WithLogger(logger), agp.WithMetrics(rec))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("upper-bound") {
				s.AddUpperBound(upper)
			}
			res, err := s.Solve(ctx)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(res)
		},
	}

	fs := cmd.Flags()
	c.bind(fs)
	fs.StringVar(&c.cfg.Backend, "backend", c.cfg.Backend, "SAT backend: gini or gophersat")
	fs.DurationVar(&c.cfg.TimeLimit, "time-limit", c.cfg.TimeLimit, "wall-clock limit for witnesses and search")
	fs.StringVar(&c.cfg.SearchStrategy, "strategy", c.cfg.SearchStrategy, "search strategy: binary or linear")
	fs.StringVar(&c.cfg.IterationStrategy, "iteration-strategy", c.cfg.IterationStrategy, "strategy for refinement rounds")
	fs.Float64Var(&c.cfg.OptTolerance, "opt-tol", c.cfg.OptTolerance, "relative optimality tolerance")
	fs.StringVar(&c.cfg.APSP, "apsp", c.cfg.APSP, "all-pairs method: dijkstra or floyd-warshall")
	fs.StringVar(&c.cfg.Witness.File, "witnesses", "", "stored witness list replacing shadow witnesses")
	fs.StringVar(&c.cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	fs.Int64Var(&upper, "upper-bound", 0, "known upper bound on the objective")

	return cmd
}

// serveMetrics exposes reg on addr until the returned stop is called.
func serveMetrics(addr string, reg *prometheus.Registry, log logrus.FieldLogger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Warn("metrics server stopped")
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
