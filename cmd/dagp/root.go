// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/dispagp/config"
	"github.com/katalvlaran/dispagp/logging"
	"github.com/katalvlaran/dispagp/polygon"
)

// common holds the flags shared by solve and witnesses.
type common struct {
	instance   string
	configPath string
	debug      bool

	// file values are overridden only by flags the user set
	cfg config.Config
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "dagp",
		Short:        "Dispersive art gallery solver",
		SilenceUsage: true,
	}
	cmd.AddCommand(newSolveCmd(), newWitnessesCmd(), newGenerateCmd())

	return cmd
}

func (c *common) bind(fs *pflag.FlagSet) {
	c.cfg = config.Default()
	fs.StringVarP(&c.instance, "instance", "i", "", "instance file (YAML or JSON)")
	fs.StringVar(&c.configPath, "config", "", "configuration file (YAML)")
	fs.BoolVar(&c.debug, "debug", false, "use debug log level")
	fs.IntVar(&c.cfg.Workers, "workers", c.cfg.Workers, "goroutines for visibility precomputation")
	fs.StringVar(&c.cfg.Log.Format, "log-format", c.cfg.Log.Format, "log format: text or json")
}

// config merges the config file with explicitly set flags.
func (c *common) config(fs *pflag.FlagSet) (config.Config, error) {
	out := config.Default()
	if c.configPath != "" {
		var err error
		if out, err = config.LoadFile(c.configPath); err != nil {
			return config.Config{}, err
		}
	}
	overrides := map[string]func(){
		"workers":            func() { out.Workers = c.cfg.Workers },
		"log-format":         func() { out.Log.Format = c.cfg.Log.Format },
		"backend":            func() { out.Backend = c.cfg.Backend },
		"time-limit":         func() { out.TimeLimit = c.cfg.TimeLimit },
		"strategy":           func() { out.SearchStrategy = c.cfg.SearchStrategy },
		"iteration-strategy": func() { out.IterationStrategy = c.cfg.IterationStrategy },
		"opt-tol":            func() { out.OptTolerance = c.cfg.OptTolerance },
		"apsp":               func() { out.APSP = c.cfg.APSP },
		"witnesses":          func() { out.Witness.File = c.cfg.Witness.File },
		"metrics-addr":       func() { out.MetricsAddr = c.cfg.MetricsAddr },
	}
	fs.Visit(func(f *pflag.Flag) {
		if set, ok := overrides[f.Name]; ok {
			set()
		}
	})
	if c.debug {
		out.Log.Level = "debug"
	}

	return out, out.Validate()
}

func (c *common) logger(cmd *cobra.Command, cfg config.Config) (*logrus.Logger, error) {
	return logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
}

func (c *common) load() (*polygon.Instance, error) {
	if c.instance == "" {
		return nil, errors.New("missing --instance")
	}

	return polygon.LoadFile(c.instance)
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
