// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// version is set at build time with
// -ldflags "-X laptudirm.com/x/ataxx/internal/ataxx/cmd.version=v1.2.3".
var version = "v0.0.0-dev"

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "ataxx",
		Short: "Play Ataxx on the console",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Ataxx's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().String("config", "", "Configuration file to use")

	root.Version = version
	root.SetVersionTemplate("ataxx {{.Version}}\n")

	// Register the various commands.
	root.AddCommand(Play())
	root.AddCommand(Moves())
	root.AddCommand(Rules())
	root.AddCommand(Series())
	root.AddCommand(Config())

	return root
}
