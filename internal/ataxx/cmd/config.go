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
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/ataxx/pkg/config"
)

func Config() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize the configuration",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`config prints the effective configuration, the configuration
			file with the given flags applied on top of it.

			With --init the defaults and the given flags are written to the
			file given by --config, or to ataxx/config.yaml in the XDG config
			home. An existing file is only replaced with --force.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if initialize, _ := cmd.Flags().GetBool("init"); initialize {
				return initConfig(cmd)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(&cfg)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	gameFlags(cmd)
	playFlags(cmd)
	cmd.Flags().Bool("init", false, "Write the configuration file")
	cmd.Flags().Bool("force", false, "Overwrite an existing configuration file")

	return cmd
}

// initConfig writes the defaults with the command line flags applied.
func initConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path, _ = config.Path()
	}

	if force, _ := cmd.Flags().GetBool("force"); path != "" && config.Exists(path) && !force {
		return fmt.Errorf("config: %s already exists, use --force to overwrite", path)
	}

	cfg := config.Default()
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	path, err := cfg.Save(path)
	if err != nil {
		return err
	}

	logrus.Infof("Configuration written to %s", path)
	return nil
}
