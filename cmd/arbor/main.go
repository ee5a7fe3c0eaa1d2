/*
Command arbor sorts words with an ordered tree and prints lazy ranges.

	arbor sort [--order fold] [--format columns] [files...]
	arbor range 0 1 0.1
	arbor range --limit 5 0 10 0

Settings may be read from a YAML file given with --config; flags take
precedence over the file.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}

// options are shared between the root command and its subcommands.
type options struct {
	configPath string
	traceLevel string
	config     Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "arbor",
		Short: "Sort words with an ordered tree and print lazy ranges",
		Long: `arbor feeds the words of text files (or stdin) into an unbalanced binary
search tree and prints them in order, or as the shape of the tree.
It also prints the values of half-open numeric ranges.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupTracing(opts.traceLevel); err != nil {
				return err
			}
			conf, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			opts.config = conf
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&opts.traceLevel, "trace", "", "trace level (debug, info, error)")
	root.AddCommand(newSortCmd(opts))
	root.AddCommand(newRangeCmd(opts))
	return root
}

var traceLevels = map[string]tracing.TraceLevel{
	"debug": tracing.LevelDebug,
	"info":  tracing.LevelInfo,
	"error": tracing.LevelError,
}

// setupTracing routes traces to the Go logger. An empty level leaves tracing
// untouched.
func setupTracing(level string) error {
	if level == "" {
		return nil
	}
	lvl, ok := traceLevels[strings.ToLower(level)]
	if !ok {
		return errors.Errorf("unknown trace level %q", level)
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(lvl)
	tracing.Select("arbor").SetTraceLevel(lvl)
	return nil
}
