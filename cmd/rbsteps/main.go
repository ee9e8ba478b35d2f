/*
Command rbsteps replays red-black tree insertions step by step.

	rbsteps replay --keys "10,20,15" --frames
	rbsteps interactive --keys "1,2,3,4,5"

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/npillmayer/redblack"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var (
	keysFlag  string
	traceFlag string
)

var rootCmd = &cobra.Command{
	Use:   "rbsteps [command] (flags)",
	Short: "step through red-black tree insertions",
	Long: `rbsteps inserts integer keys into a red-black tree and lets you inspect
the tree after every insertion, together with the rebalancing cases applied.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupTracing(traceFlag)
	},
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		replayCmd,
		interactiveCmd,
	)
	rootCmd.PersistentFlags().StringVarP(
		&keysFlag, "keys", "k", "", "comma-separated integer keys to insert")
	rootCmd.PersistentFlags().StringVar(
		&traceFlag, "trace", "error", "trace level (debug, info, error)")

	replayCmd.Flags().BoolVar(
		&replayConfig.dot, "dot", false, "output the final tree in Graphviz DOT format")
	replayCmd.Flags().BoolVar(
		&replayConfig.frames, "frames", false, "print the intermediate trees of every insertion")

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}

func setupTracing(level string) error {
	gtrace.CoreTracer = gologadapter.New()
	switch strings.ToLower(level) {
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	case "error", "":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	return nil
}

// parseKeys reports invalid tokens to stderr and returns the valid keys.
func parseKeys(input string) []int {
	keys, err := redblack.ParseKeys(input)
	if err != nil {
		log.Printf("ignoring invalid input: %v", err)
	}
	return keys
}
