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
	"os"
	"strconv"
	"strings"

	"dirpx.dev/dxcal/dxcore/model/calendar"
	"dirpx.dev/dxcal/dxcore/model/holiday"
	"github.com/spf13/cobra"
)

func (a *app) newConvertCommand() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "convert DATE",
		Short: "Convert a date between calendars",
		Long: "Convert a Jalali or Gregorian YYYY/MM/DD date and print it in the\n" +
			"Jalali, Gregorian and tabular Hijri calendars.",
		Example: "  dxcal convert 1404/01/01\n  dxcal convert --from gregorian 2025-03-21",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			system, err := calendar.ParseSystem(from)
			if err != nil {
				return err
			}

			var g calendar.GregorianDate
			switch system {
			case calendar.SystemPersian:
				j, err := calendar.ParseJalaliDate(args[0])
				if err != nil {
					return err
				}
				g = j.Gregorian()
			case calendar.SystemGregorian:
				if g, err = calendar.ParseGregorianDate(args[0]); err != nil {
					return err
				}
			default:
				return fmt.Errorf("conversion from the %s calendar is not supported", system)
			}

			a.log.Debugw("converting", "input", args[0], "from", system)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Jalali:    %s\n", g.Jalali())
			fmt.Fprintf(out, "Gregorian: %s\n", g)
			fmt.Fprintf(out, "Hijri:     %s\n", g.Hijri())
			fmt.Fprintf(out, "Weekday:   %s\n", g.Weekday())
			return nil
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", calendar.SystemPersianStr, "input calendar: jalali or gregorian")
	return cmd
}

func (a *app) newLeapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "leap YEAR",
		Short: "Report whether a Jalali year is a leap year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := atoi("YEAR", args[0])
			if err != nil {
				return err
			}

			kind, days := "common", 365
			if calendar.IsJalaliLeapYear(year) {
				kind, days = "leap", 366
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %s year, %d days\n", year, kind, days)
			return nil
		},
	}
}

func (a *app) newMonthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "month YEAR MONTH",
		Short: "Print a Jalali month as a Saturday-first grid",
		Long: "Print the length, first weekday and week grid of a Jalali month.\n" +
			"Days off from the configured holiday file are marked with '*'.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := atoi("YEAR", args[0])
			if err != nil {
				return err
			}
			month, err := atoi("MONTH", args[1])
			if err != nil {
				return err
			}

			grid, err := calendar.JalaliMonthGrid(year, month)
			if err != nil {
				return err
			}
			first, _ := calendar.FirstWeekdayOfJalaliMonth(year, month)

			set, err := a.loadHolidays("")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d\n", calendar.JalaliMonthName(month), year)
			fmt.Fprintf(out, "%d days, starts on %s\n",
				calendar.DaysInJalaliMonth(year, month), calendar.EnglishWeekdayName(first))
			fmt.Fprintln(out, "  Sa  Su  Mo  Tu  We  Th  Fr")
			for _, row := range grid {
				var b strings.Builder
				for _, day := range row {
					b.WriteString(cell(day, set != nil && day > 0 &&
						set.IsOff(calendar.JalaliDate{Year: year, Month: month, Day: day})))
				}
				fmt.Fprintln(out, strings.TrimRight(b.String(), " "))
			}
			return nil
		},
	}
}

// cell renders one grid day four columns wide.
func cell(day int, off bool) string {
	switch {
	case day == 0:
		return "    "
	case off:
		return fmt.Sprintf("%3d*", day)
	default:
		return fmt.Sprintf("%3d ", day)
	}
}

func atoi(name, s string) (int, error) {
	n, err := strconv.Atoi(calendar.FromLocalDigits(s))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, s)
	}
	return n, nil
}

// loadHolidays reads the holiday file named by path, or by the holidays
// configuration key when path is empty. It returns nil when neither is set.
func (a *app) loadHolidays(path string) (*holiday.Set, error) {
	if path == "" {
		path = a.cfg.Holidays
	}
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	set, err := holiday.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debugw("holidays loaded", "path", path, "count", set.Len())
	return set, nil
}
