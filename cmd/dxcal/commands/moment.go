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

package commands

import (
	"fmt"
	"io"

	"dirpx.dev/dxcal/dxcore/model/moment"
	"github.com/spf13/cobra"
)

func (a *app) newDiffCommand() *cobra.Command {
	var layout, unitName, formatName string

	cmd := &cobra.Command{
		Use:   "diff A B",
		Short: "Print the difference A minus B",
		Long: "Print the signed difference between two dates. With --unit auto the\n" +
			"coarsest natural unit is chosen. Defaults come from diff.unit and\n" +
			"diff.format in the configuration.",
		Example: "  dxcal diff 1404/01/02 1403/12/30\n  dxcal diff --unit jMonth --format english-text 1404/05/01 1404/01/01",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := a.cfg.DiffUnit()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("unit") {
				if unit, err = moment.ParseUnit(unitName); err != nil {
					return err
				}
			}

			format, err := a.cfg.DiffFormat()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				if format, err = moment.ParseDiffFormat(formatName); err != nil {
					return err
				}
			}

			first, err := a.parse(args[0], layout)
			if err != nil {
				return err
			}
			second, err := a.parse(args[1], layout)
			if err != nil {
				return err
			}

			d := moment.Diff(first, second, unit)
			a.log.Debugw("diff", "value", d.Value, "unit", d.Unit)
			fmt.Fprintln(cmd.OutOrStdout(), d.Format(format))
			return nil
		},
	}

	addLayoutFlag(cmd, &layout)
	cmd.Flags().StringVarP(&unitName, "unit", "u", moment.UnitAutoStr,
		"auto, minute, hour, day, jDay, week, jMonth or jYear")
	cmd.Flags().StringVar(&formatName, "format", moment.DiffNumberStr,
		"number, persian, persian-text or english-text")
	return cmd
}

func (a *app) newAddCommand() *cobra.Command {
	var layout string

	cmd := &cobra.Command{
		Use:   "add DATE DAYS",
		Short: "Shift a date by a number of days",
		Long:  "Shift a date by DAYS days, which may be negative, and print the Jalali result.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.parse(args[0], layout)
			if err != nil {
				return err
			}
			n, err := atoi("DAYS", args[1])
			if err != nil {
				return err
			}

			shifted, err := m.Add(n, moment.UnitDay)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), shifted.Format(moment.FormatJalali))
			return nil
		},
	}

	addLayoutFlag(cmd, &layout)
	// Negative day counts are values, not flags.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) newFormatCommand() *cobra.Command {
	var layout string
	var list bool

	cmd := &cobra.Command{
		Use:   "format DATE SPEC",
		Short: "Render a date with a format specifier",
		Long: "Render a date with one of the supported specifiers, for example\n" +
			"\"jDD jMMMM jYYYY\". Unknown specifiers print the UTC ISO 8601 instant.\n" +
			"Use --list to see every specifier.",
		Example: "  dxcal format 1404/01/01 'jDDDD jDD jMMMM jYYYY'\n  dxcal format --list",
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				printSpecs(out, "Jalali", moment.JalaliFormats)
				printSpecs(out, "Gregorian", moment.GregorianFormats)
				printSpecs(out, "Diff", moment.DiffFormats)
				return nil
			}

			m, err := a.parse(args[0], layout)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, m.Format(args[1]))
			return nil
		},
	}

	addLayoutFlag(cmd, &layout)
	cmd.Flags().BoolVar(&list, "list", false, "list the supported specifiers")
	return cmd
}

func printSpecs(w io.Writer, title string, specs []moment.FormatSpec) {
	fmt.Fprintf(w, "%s:\n", title)
	for _, s := range specs {
		fmt.Fprintf(w, "  %-24s %-18s %s\n", s.Spec, s.Label, s.Example)
	}
}

func (a *app) newOutputCommand() *cobra.Command {
	var layout, outputName string

	cmd := &cobra.Command{
		Use:   "output DATE [END]",
		Short: "Render a date or a range the way a date picker reports it",
		Long: "Render DATE in the selected output format: iso, shamsi, gregorian,\n" +
			"hijri or timestamp. With END, render the range START..END with one\n" +
			"value per line. The default comes from the output configuration key.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.cfg.OutputFormat()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				if format, err = moment.ParseOutputFormat(outputName); err != nil {
					return err
				}
			}

			start, err := a.parse(args[0], layout)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				fmt.Fprintln(out, start.Output(format))
				return nil
			}

			end, err := a.parse(args[1], layout)
			if err != nil {
				return err
			}
			values, err := moment.OutputRange(start, end, format)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, values[0])
			fmt.Fprintln(out, values[1])
			return nil
		},
	}

	addLayoutFlag(cmd, &layout)
	cmd.Flags().StringVarP(&outputName, "output", "o", moment.OutputISOStr,
		"iso, shamsi, gregorian, hijri or timestamp")
	return cmd
}
