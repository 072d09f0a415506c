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

	"dirpx.dev/dxcal/dxcore/model/semver"
	"github.com/spf13/cobra"
)

// Version is the release of dxcal, set at build time with
// -ldflags "-X dirpx.dev/dxcal/cmd/dxcal/commands.Version=1.2.3".
var Version = "0.1.0"

func buildVersion() (semver.Version, error) {
	v, err := semver.ParseVersion(Version)
	if err != nil {
		return semver.Version{}, fmt.Errorf("invalid build version: %w", err)
	}
	return v, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dxcal version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := buildVersion()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dxcal v%s\n", v)
			if v.IsPrerelease() {
				fmt.Fprintln(cmd.OutOrStdout(), "pre-release build")
			}
			return nil
		},
	}
}
