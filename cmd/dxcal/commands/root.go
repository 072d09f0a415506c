/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package commands implements the dxcal subcommands.
package commands

import (
	"fmt"
	"io"
	"os"
	"time"
	_ "time/tzdata" // Asia/Tehran must resolve on hosts without a zoneinfo database

	"dirpx.dev/dxcal/dxcore/model/moment"
	"dirpx.dev/dxcal/internal/config"
	"dirpx.dev/dxcal/internal/logger"
	"github.com/spf13/cobra"
)

// app is the state shared by all subcommands once the root command has
// loaded the configuration.
type app struct {
	cfg *config.Config
	log *logger.Logger
	loc *time.Location

	configPath string
	timezone   string
	logLevel   string
}

// Execute runs the dxcal command line with args and returns the process exit
// code. Errors are logged once; usage is not repeated on failure.
func Execute(args []string) int {
	return execute(args, os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) int {
	a := &app{}
	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteC()
	if err == nil {
		return 0
	}

	name := root.Name()
	if cmd != nil {
		name = cmd.Name()
	}
	if a.log != nil {
		a.log.WithCommand(name).WithError(err).Error("command failed")
		_ = a.log.Close()
	} else {
		fmt.Fprintf(stderr, "dxcal: %v\n", err)
	}
	return 1
}

func (a *app) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "dxcal",
		Short: "Jalali, Gregorian and Hijri calendar tool",
		Long: "dxcal converts dates between the Jalali (Solar Hijri), Gregorian and\n" +
			"tabular Hijri calendars, and diffs, shifts, formats and renders moments\n" +
			"the way a Persian date picker does.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.timezone, "timezone", "", "IANA time zone (default from config, Asia/Tehran)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		a.newConvertCommand(),
		a.newLeapCommand(),
		a.newMonthCommand(),
		a.newDiffCommand(),
		a.newAddCommand(),
		a.newFormatCommand(),
		a.newOutputCommand(),
		a.newHolidaysCommand(),
		newVersionCommand(),
	)

	return root
}

// setup loads the configuration, applies flag overrides and builds the
// logger and time zone used by every subcommand.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.timezone != "" {
		cfg.Timezone = a.timezone
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	a.cfg, a.log, a.loc = cfg, log, loc
	a.log.Debugw("configuration loaded",
		"command", cmd.Name(),
		"timezone", cfg.Timezone,
		"output", cfg.Output,
	)
	return nil
}

// parse reads a date argument in the configured time zone.
func (a *app) parse(input, layout string) (moment.Moment, error) {
	return moment.ParseInLocation(input, resolveLayout(layout), a.loc)
}

// resolveLayout maps the short --layout names to moment layouts. Anything
// else is passed through, so "auto" or "" selects free-form parsing.
func resolveLayout(name string) string {
	switch name {
	case "jalali", "shamsi", "persian":
		return moment.LayoutJalali
	case "gregorian":
		return moment.LayoutGregorian
	default:
		return name
	}
}

func addLayoutFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "layout", "l", "jalali",
		"input layout: jalali, gregorian, or auto for ISO 8601 and epoch milliseconds")
}
