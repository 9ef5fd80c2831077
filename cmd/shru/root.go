// SPDX-License-Identifier: EPL-2.0

package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ik5/shru/internal/config"
)

type app struct {
	out, errOut io.Writer
	log         *logrus.Logger
	cfg         *config.Config

	logLevel string
}

func newApp(out, errOut io.Writer) *app {
	log := logrus.New()
	log.SetOutput(errOut)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return &app{out: out, errOut: errOut, log: log}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shru",
		Short: "Decode SHRU underwater acoustic recordings",
		Long: `shru reads .DXX files written by the SHRU recorder.

Defaults for bit depth, calibration, workers, output directory and log level
come from SHRU_* environment variables, optionally set in a .env file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (panic, fatal, error, warn, info, debug, trace)")

	cmd.AddCommand(a.inspectCmd(), a.exportCmd(), a.versionCmd())

	return cmd
}

// setup loads the configuration and applies the log level before any subcommand runs.
func (a *app) setup(*cobra.Command, []string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if a.logLevel != "" {
		level, err = logrus.ParseLevel(a.logLevel)
		if err != nil {
			return err
		}
	}
	a.log.SetLevel(level)

	return nil
}
