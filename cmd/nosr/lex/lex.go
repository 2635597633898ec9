/*
 * Copyright (c) 2024-2025, the nosr authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lex

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/nosr-io/nosr/pkg/common/parse"
	"github.com/nosr-io/nosr/pkg/lexer"
	"github.com/nosr-io/nosr/pkg/repl"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a nosr document and print the token stream",
	Args:  cobra.MaximumNArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		output := viper.GetString("nosr.output")
		switch output {
		case "diag", "table", "csv", "json":
		default:
			log.Fatal().Str("output", output).Msg("unsupported output format")
		}

		source, err := readSource(args)
		if err != nil {
			log.Fatal().Err(err).Msg("unable to read input")
		}

		start := time.Now()
		tokens, err := lexer.Tokenize(source)
		if err != nil {
			var serr *parse.ScanError
			if errors.As(err, &serr) {
				fmt.Fprint(os.Stderr, serr.FormatError(source))
			}
			log.Fatal().Err(err).Msg("lex failed")
		}
		elapsed := time.Since(start)

		writer := repl.NewOutputWriter(os.Stdout, output)
		writer.Write(repl.TokenListing{Tokens: tokens})

		log.Info().
			Str("size", humanize.Bytes(uint64(len(source)))).
			Str("tokens", humanize.Comma(int64(len(tokens)))).
			Dur("elapsed", elapsed).
			Msg("lexed document")
	},
}

func readSource(args []string) (string, error) {
	if len(args) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "unable to read stdin")
		}
		return string(b), nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", errors.Wrapf(err, "unable to read %s", args[0])
	}
	return string(b), nil
}

func init() {
	// Flags for this command
	Command.Flags().StringP("output", "o", "diag", "Output format of the token stream [diag, table, csv, json]")

	// Bind flags to viper
	viper.BindPFlag("nosr.output", Command.Flags().Lookup("output"))
}
