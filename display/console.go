package display

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/arbor"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config controls console output.
type Config struct {
	LineWidth int            // line width in en, i.e. in fixed-width cells
	Color     bool           // colorize output
	Context   *uax11.Context // context for East Asian width of characters
	Palette   []*color.Color // colors, cycled through by tree depth
	Duplicate *color.Color   // color for repeated payloads
}

// DefaultPalette is used if a Config does not specify a palette.
var DefaultPalette = []*color.Color{
	color.New(color.FgBlue),
	color.New(color.FgGreen),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
}

func (config *Config) normalized() *Config {
	c := Config{}
	if config != nil {
		c = *config
	}
	if c.LineWidth <= 0 {
		c.LineWidth = 65
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	if len(c.Palette) == 0 {
		c.Palette = DefaultPalette
	}
	if c.Duplicate == nil {
		c.Duplicate = color.New(color.FgRed)
	}
	return &c
}

func (config *Config) paint(c *color.Color, s string) string {
	if !config.Color || c == nil {
		return s
	}
	return c.Sprint(s)
}

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly. Colors are
// switched on for terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{
		Context: uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Color = true
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 65
		} else if w > 10 {
			config.LineWidth = w - 2
		} else {
			config.LineWidth = 10
		}
	} else {
		config.LineWidth = 65
	}
	tracer().Infof("setting line length to %d en", config.LineWidth)
	return config
}

var setupGraphemes sync.Once

// Width returns the number of fixed-width cells s occupies on a console.
func Width(s string, context *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if context == nil {
		context = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// Columns prints the payloads of tree in order, laid out in columns which fit
// into the configured line width. Columns are filled top to bottom. A
// payload which is textually identical to its predecessor is colored as a
// duplicate.
func Columns[T any](w io.Writer, tree *arbor.Tree[T], config *Config) error {
	config = config.normalized()
	var items []string
	var widths []int
	maxw := 0
	for payload := range tree.All() {
		s := fmt.Sprint(payload)
		items = append(items, s)
		wd := Width(s, config.Context)
		widths = append(widths, wd)
		maxw = max(maxw, wd)
	}
	if len(items) == 0 {
		return nil
	}
	colw := maxw + 2
	cols := max(1, (config.LineWidth+2)/colw)
	rows := (len(items) + cols - 1) / cols
	tracer().Debugf("layout of %d items: %d rows × %d columns of width %d", len(items), rows, cols, colw)
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := c*rows + r
			if i >= len(items) {
				break
			}
			if c > 0 {
				sb.WriteString("  ")
			}
			paint := config.Palette[0]
			if i > 0 && items[i] == items[i-1] {
				paint = config.Duplicate
			}
			sb.WriteString(config.paint(paint, items[i]))
			if c < cols-1 && i+rows < len(items) {
				sb.WriteString(strings.Repeat(" ", maxw-widths[i]))
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Lines prints the payloads of tree in order, one per line.
func Lines[T any](w io.Writer, tree *arbor.Tree[T], config *Config) error {
	config = config.normalized()
	var sb strings.Builder
	prev, first := "", true
	tree.Walk(func(payload T) bool {
		s := fmt.Sprint(payload)
		paint := config.Palette[0]
		if !first && s == prev {
			paint = config.Duplicate
		}
		sb.WriteString(config.paint(paint, s))
		sb.WriteByte('\n')
		prev, first = s, false
		return true
	})
	_, err := io.WriteString(w, sb.String())
	return err
}

// Sideways prints the shape of tree rotated counter-clockwise: the root is
// at the left margin, right subtrees are above and left subtrees below their
// parent, and every level is indented by four cells. Reading the output top
// down gives the payloads in reverse order.
func Sideways[T any](w io.Writer, tree *arbor.Tree[T], config *Config) error {
	config = config.normalized()
	type frame struct {
		node  *arbor.Node[T]
		depth int
	}
	var sb strings.Builder
	var stack []frame
	current, depth := tree.Root(), 0
	for current != nil || len(stack) > 0 {
		for current != nil {
			stack = append(stack, frame{current, depth})
			current, depth = current.Right(), depth+1
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		sb.WriteString(strings.Repeat(" ", 4*top.depth))
		paint := config.Palette[top.depth%len(config.Palette)]
		sb.WriteString(config.paint(paint, fmt.Sprint(top.node.Payload())))
		sb.WriteByte('\n')
		current, depth = top.node.Left(), top.depth+1
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
