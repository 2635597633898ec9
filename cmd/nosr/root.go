/*
 * Copyright (c) 2024-2025, the nosr authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package nosr

import (
	"fmt"
	"os"

	"github.com/nosr-io/nosr/cmd/nosr/get"
	"github.com/nosr-io/nosr/cmd/nosr/lex"
	"github.com/nosr-io/nosr/cmd/nosr/serve"
	"github.com/nosr-io/nosr/cmd/nosr/shell"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "nosr",
		Short: "Lex, validate, and navigate nosr documents",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		Version: Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the nosr config file (default ./config.toml)")

	// Bind viper config to the root flags
	viper.BindPFlag("nosr.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("nosr.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("nosr version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	// Bind viper flags to ENV variables
	viper.AutomaticEnv()

	// Register commands on the root binary command
	serve.Command.Version = rootCmd.Version
	shell.Command.Version = rootCmd.Version
	rootCmd.AddCommand(lex.Command)
	rootCmd.AddCommand(get.Command)
	rootCmd.AddCommand(shell.Command)
	rootCmd.AddCommand(serve.Command)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}
