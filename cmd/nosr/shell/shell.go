/*
 * Copyright (c) 2024-2025, the nosr authors
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package shell

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/nosr-io/nosr/pkg/common/parse"
	"github.com/nosr-io/nosr/pkg/lexer"
	"github.com/nosr-io/nosr/pkg/nosr"
	"github.com/nosr-io/nosr/pkg/repl"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var log zerolog.Logger

var Command = &cobra.Command{
	Use:   "shell",
	Short: "Interactive prompt for lexing and navigating nosr snippets",

	Run: func(cmd *cobra.Command, args []string) {
		readlinePrompt()
	},
}

func init() {
	log = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).
		With().
		Timestamp().
		Caller().
		Logger()
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func readlinePrompt() {
	completer := readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("lex"),
		readline.PcItem("get"),
		readline.PcItem("text"),
		readline.PcItem("exit"),
	)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	writer := repl.NewOutputWriter(os.Stdout, "diag")

	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}
		line := strings.TrimSpace(ln.Line)

		if strings.ToUpper(line) == "HELP" {
			fmt.Println("usage:")
			fmt.Println("    lex <snippet>         print the token stream")
			fmt.Println("    get <path> <snippet>  navigate to a dotted path")
			fmt.Println("    text <snippet>        print the unescaped text")
			fmt.Println("    exit")
			continue
		}
		if strings.ToUpper(line) == "EXIT" {
			os.Exit(0)
		}

		command, rest, _ := strings.Cut(line, " ")
		switch command {
		case "lex":
			tokens, err := lexer.Tokenize(rest)
			if err != nil {
				printScanError(err, rest)
				continue
			}
			writer.Write(repl.TokenListing{Tokens: tokens})
		case "get":
			path, snippet, ok := strings.Cut(rest, " ")
			if !ok {
				log.Error().Msg("usage: get <path> <snippet>")
				continue
			}
			evalGet(path, snippet)
		case "text":
			evalText(rest)
		case "":
		default:
			log.Error().Str("command", command).Msg("unknown command, try 'help'")
		}
	}
	rl.Clean()
}

func evalGet(path, snippet string) {
	node, err := nosr.Document(snippet)
	if err != nil {
		printScanError(err, snippet)
		return
	}

	for _, component := range strings.Split(path, ".") {
		if index, converr := strconv.Atoi(component); converr == nil {
			node, err = nosr.Vec(node, index)
		} else {
			node, err = nosr.Tab(node, component)
		}
		if err != nil {
			log.Error().Err(err).Send()
			return
		}
	}

	text, err := nosr.Text(node)
	if err != nil {
		fmt.Println(node.Raw())
		return
	}
	fmt.Println(text)
}

func evalText(snippet string) {
	node, err := nosr.Document(snippet)
	if err != nil {
		printScanError(err, snippet)
		return
	}

	text, err := nosr.Text(node)
	if err != nil {
		log.Error().Err(err).Send()
		return
	}
	fmt.Println(text)
}

func printScanError(err error, input string) {
	var serr *parse.ScanError
	if errors.As(err, &serr) {
		fmt.Print(serr.FormatError(input))
		return
	}
	log.Error().Err(err).Send()
}
