/*
 * Copyright (c) 2024-2025, the nosr authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package get

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nosr-io/nosr/pkg/nosr"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "get <path> [file]",
	Short: "Navigate a nosr document and print the value at a dotted path",
	Long: `Navigate a nosr document and print the value at a dotted path.

Path components are table keys; integer components index into vectors.
For example, "servers.0.host" returns the host of the first server.`,
	Args: cobra.RangeArgs(1, 2),

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		source, err := readSource(args[1:])
		if err != nil {
			log.Fatal().Err(err).Msg("unable to read input")
		}

		node, err := nosr.Document(source)
		if err != nil {
			log.Fatal().Err(err).Msg("unable to parse document")
		}

		for _, component := range strings.Split(args[0], ".") {
			if index, converr := strconv.Atoi(component); converr == nil {
				node, err = nosr.Vec(node, index)
			} else {
				node, err = nosr.Tab(node, component)
			}
			if err != nil {
				log.Fatal().Err(err).Str("component", component).Msg("navigation failed")
			}
		}

		if viper.GetBool("nosr.raw") {
			fmt.Println(node.Raw())
			return
		}

		text, err := nosr.Text(node)
		if err != nil {
			// Not a scalar; fall back to the raw region.
			fmt.Println(node.Raw())
			return
		}
		fmt.Println(text)
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
	Command.Flags().Bool("raw", false, "Print the raw region instead of the unescaped text")

	// Bind flags to viper
	viper.BindPFlag("nosr.raw", Command.Flags().Lookup("raw"))
}
