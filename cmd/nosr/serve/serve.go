/*
 * Copyright (c) 2024-2025, the nosr authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package serve

import (
	"github.com/nosr-io/nosr/pkg/server"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "serve",
	Short: "HTTP service for lexing and validating nosr documents",

	Run: func(cmd *cobra.Command, args []string) {
		logger := viper.Get("logger").(zerolog.Logger)

		srv := server.New(
			logger,
			viper.GetInt("nosr.port"),
			viper.GetInt("nosr.prom-port"),
		)

		// Serve the lex and validate endpoints
		go srv.ListenAndServe()

		// Serve the metrics endpoint
		srv.ServeMetrics()
	},
}

func init() {
	// Flags for this command
	Command.Flags().IntP("port", "p", 8001, "Port for the document endpoints")
	Command.Flags().Int("prom-port", 2112, "Set the port for /metrics")

	// Bind flags to viper
	viper.BindPFlag("nosr.port", Command.Flags().Lookup("port"))
	viper.BindPFlag("nosr.prom-port", Command.Flags().Lookup("prom-port"))
}
