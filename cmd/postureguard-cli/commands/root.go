// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/l3montree-dev/postureguard/config"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const defaultConfigFilename = ".postureguard"

var cfgFile string

var rootCmd = &cobra.Command{
	SilenceUsage: true,
	Use:          "postureguard-cli",
	Short:        "Management cli",
	Version:      config.Version,
	Long: `The postureguard cli computes security postures and inspects trend series
directly against the database. Configuration can be provided via a ./.postureguard
config file or environment variables (prefix POSTUREGUARD_).`,
	Example: `  # compute the posture of a tenant without writing a trend point
  postureguard-cli compute --tenant acme --no-trend

  # print the last 14 days of the trend series
  postureguard-cli trend --tenant acme --days 14`,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := cmd.Flags().GetString("logLevel")
		if err != nil {
			return err
		}
		initLogger(parseLevel(level))

		return initializeConfig(cmd)
	},
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringP("logLevel", "l", "info", "Set the log level. Options: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.postureguard.yaml)")

	rootCmd.AddCommand(
		NewComputeCommand(),
		NewTrendCommand(),
		NewMigrateCommand(),
		NewProfileCommand(),
	)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func initLogger(level slog.Leveler) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}),
	))
}

func initializeConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(defaultConfigFilename)
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/postureguard/")
	}

	// a missing config file is fine, a broken one is not
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		slog.Debug("no config file found")
	}

	viper.SetEnvPrefix("POSTUREGUARD")
	// --no-trend is read from POSTUREGUARD_NO_TREND
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	bindFlags(cmd)
	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		configName := f.Name

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && viper.IsSet(configName) {
			val := viper.Get(configName)
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)) // nolint: errcheck
		}

		if err := viper.BindPFlag(configName, f); err != nil {
			slog.Error("could not bind flag to viper", "err", err)
		}
	})
}
