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
	"errors"
	"fmt"

	"dirpx.dev/dxcal/dxcore/model/moment"
	"github.com/spf13/cobra"
)

func (a *app) newHolidaysCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "holidays [YEAR MONTH]",
		Short: "List the holidays of a Jalali month",
		Long: "List the holidays of a Jalali month from a holiday file, the current\n" +
			"month by default. The file is taken from --file or the holidays\n" +
			"configuration key.",
		Args: cobra.MatchAll(cobra.RangeArgs(0, 2), func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return errors.New("YEAR and MONTH must be given together")
			}
			return nil
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.loadHolidays(file)
			if err != nil {
				return err
			}
			if set == nil {
				return errors.New("no holiday file: use --file or set holidays in the configuration")
			}

			today := moment.Now(a.loc).Jalali()
			year, month := today.Year, today.Month
			if len(args) == 2 {
				if year, err = atoi("YEAR", args[0]); err != nil {
					return err
				}
				if month, err = atoi("MONTH", args[1]); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, h := range set.InMonth(year, month) {
				fmt.Fprintf(out, "%s  %s\n", h.Gregorian(), h)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "holiday YAML or JSON file")
	return cmd
}
