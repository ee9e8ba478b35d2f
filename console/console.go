/*
Package console prints red-black tree snapshots to terminals.

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/redblack/rbtree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/term"
)

// tracer writes to trace with key 'redblack'
func tracer() tracing.Trace {
	return tracing.Select("redblack")
}

// Config holds the output parameters of a Printer.
type Config struct {
	LineWidth int // lines longer than this are cut, 0 for no limit
}

// Printer outputs tree snapshots as indented, colored outlines:
//
//	15
//	├── 10
//	└── 20
//
// Red nodes are printed in red, black nodes in bold. Absent children are
// shown as "nil" if their sibling is present.
type Printer struct {
	config *Config
	colors map[rbtree.Color]*color.Color
}

// NewPrinter creates a printer. If config is nil, a config is derived from
// the current terminal's properties.
func NewPrinter(config *Config) *Printer {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return &Printer{
		config: config,
		colors: makeDefaultPalette(),
	}
}

func makeDefaultPalette() map[rbtree.Color]*color.Color {
	return map[rbtree.Color]*color.Color{
		rbtree.Red:   color.New(color.FgRed, color.Bold),
		rbtree.Black: color.New(color.Bold),
	}
}

// Print outputs snap to stdout.
func (p *Printer) Print(snap *rbtree.Snapshot) error {
	return p.Fprint(os.Stdout, snap)
}

// Fprint outputs snap to w. The empty tree is printed as "(empty)".
func (p *Printer) Fprint(w io.Writer, snap *rbtree.Snapshot) error {
	if snap.IsEmpty() {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	return p.node(w, snap.Root(), "", "")
}

func (p *Printer) node(w io.Writer, n *rbtree.SnapshotNode, lead, childLead string) error {
	if n == nil {
		return p.line(w, lead, color.New(color.Faint), "nil")
	}
	if err := p.line(w, lead, p.colors[n.Color()], fmt.Sprintf("%d", n.Key())); err != nil {
		return err
	}
	if n.Left() == nil && n.Right() == nil {
		return nil
	}
	if err := p.node(w, n.Left(), childLead+"├── ", childLead+"│   "); err != nil {
		return err
	}
	return p.node(w, n.Right(), childLead+"└── ", childLead+"    ")
}

func (p *Printer) line(w io.Writer, lead string, c *color.Color, label string) error {
	if width := p.config.LineWidth; width > 0 {
		runes := []rune(lead)
		if len(runes)+len(label) > width {
			if len(runes) >= width {
				lead = string(runes[:width-1]) + "…"
				label = ""
			} else {
				label = "…"
			}
		}
	}
	if _, err := io.WriteString(w, lead); err != nil {
		return err
	}
	if c == nil {
		_, err := io.WriteString(w, label+"\n")
		return err
	}
	if _, err := c.Fprint(w, label); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Legend returns a single line explaining the colors.
func (p *Printer) Legend() string {
	return p.colors[rbtree.Red].Sprint("red") + " / " + p.colors[rbtree.Black].Sprint("black")
}

// Labels joins step labels for display, e.g. "Step 1: Case 2 → Step 2: Case 3".
func Labels(labels []string) string {
	if len(labels) == 0 {
		return "no rebalancing"
	}
	return strings.Join(labels, " → ")
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a printer Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 65
		} else {
			config.LineWidth = w
		}
	}
	tracer().P("format", "console").Debugf("setting line length to %d", config.LineWidth)
	return config
}
