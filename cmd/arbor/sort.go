package main

import (
	"io"

	"github.com/fatih/color"
	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/display"
	"github.com/npillmayer/arbor/lazy"
	"github.com/npillmayer/arbor/order"
	"github.com/npillmayer/arbor/wordfeed"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newSortCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort [files...]",
		Short: "Sort the words of text files",
		Long: `The sort command inserts every word of the given files into an ordered
tree and prints the tree. Without files, words are read from stdin.

Orders are natural, reverse, fold (case-insensitive) and collate:<lang>.
Formats are lines, columns, tree (rotated tree shape), html and dot.

Example:
  arbor sort README.md
  arbor sort --order collate:de --format columns words.txt
  echo "root one two four" | arbor sort --format tree`,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := opts.config
			flags := cmd.Flags()
			if flags.Changed("order") {
				conf.Order, _ = flags.GetString("order")
			}
			if flags.Changed("format") {
				conf.Format, _ = flags.GetString("format")
			}
			if flags.Changed("color") {
				conf.Color, _ = flags.GetString("color")
			}
			if flags.Changed("iterative") {
				conf.Iterative, _ = flags.GetBool("iterative")
			}
			if flags.Changed("width") {
				conf.LineWidth, _ = flags.GetInt("width")
			}
			if err := conf.validate(); err != nil {
				return err
			}
			return runSort(cmd, conf, args)
		},
	}
	cmd.Flags().StringP("order", "o", "natural", "order of words")
	cmd.Flags().StringP("format", "f", "lines", "output format")
	cmd.Flags().String("color", "auto", "colorize output (auto, always, never)")
	cmd.Flags().Bool("iterative", false, "insert words without recursion")
	cmd.Flags().IntP("width", "w", 0, "line width for columns (0 = terminal width)")
	return cmd
}

func runSort(cmd *cobra.Command, conf Config, args []string) error {
	compare, err := order.ByName(conf.Order)
	if err != nil {
		return err
	}
	tree := arbor.Empty(compare)
	insert := tree.Insert
	if conf.Iterative {
		insert = tree.InsertIterative
	}
	if len(args) == 0 {
		if err := feedWords(wordfeed.FromReader(cmd.InOrStdin()), insert); err != nil {
			return errors.Wrap(err, "stdin")
		}
	}
	for _, path := range args {
		feed, err := wordfeed.Open(path)
		if err != nil {
			return errors.Wrap(err, "cannot sort")
		}
		if err := feedWords(feed, insert); err != nil {
			return errors.Wrap(err, path)
		}
	}
	tracer().Infof("sorted %d words, tree height is %d", tree.Len(), tree.Height())
	return printTree(cmd.OutOrStdout(), tree, conf)
}

func feedWords(feed *wordfeed.Feed, insert func(string)) error {
	defer feed.Close()
	for word := range lazy.All[string](feed) {
		insert(word)
	}
	return feed.Err()
}

func printTree(w io.Writer, tree *arbor.Tree[string], conf Config) error {
	var dc *display.Config
	switch conf.Color {
	case "auto":
		dc = display.ConfigFromTerminal()
	case "always":
		color.NoColor = false
		dc = &display.Config{Color: true}
	default:
		dc = &display.Config{}
	}
	if conf.LineWidth > 0 {
		dc.LineWidth = conf.LineWidth
	}
	switch conf.Format {
	case "columns":
		return display.Columns(w, tree, dc)
	case "tree":
		return display.Sideways(w, tree, dc)
	case "html":
		if err := display.HTML(w, tree); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case "dot":
		return arbor.Tree2Dot(tree, w)
	}
	return display.Lines(w, tree, dc)
}
