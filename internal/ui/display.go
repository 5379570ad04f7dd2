package ui

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

// DefaultTermWidth is used when stdout is not a terminal and COLUMNS is unset.
const DefaultTermWidth = 120

const (
	// compactWidth is the narrowest terminal that still gets the tags column.
	compactWidth = 72
	// minHelpWidth keeps rendered help readable on very narrow terminals.
	minHelpWidth = 40
)

// DisplayContext describes where list and help output is going.
type DisplayContext struct {
	TermWidth int  // detected, COLUMNS, or fallback width
	IsTTY     bool // whether stdout is a terminal
}

// NewDisplayContext inspects stdout. Output piped elsewhere honours COLUMNS,
// so `COLUMNS=60 tripbook list | less` gets the compact layout.
func NewDisplayContext() *DisplayContext {
	fd := os.Stdout.Fd()
	isTTY := term.IsTerminal(fd)

	width := 0
	if isTTY {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}
	if width <= 0 {
		width = columnsFromEnv()
	}
	return &DisplayContext{TermWidth: width, IsTTY: isTTY}
}

func columnsFromEnv() int {
	if n, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && n > 0 {
		return n
	}
	return DefaultTermWidth
}

// NewDisplayContextWithWidth creates a DisplayContext with a fixed width.
func NewDisplayContextWithWidth(width int) *DisplayContext {
	return &DisplayContext{TermWidth: width, IsTTY: true}
}

// Compact reports whether lists drop the tags column to leave room for
// names and details.
func (d *DisplayContext) Compact() bool { return d.TermWidth < compactWidth }

// ListColumns is the layout shared by the attraction, itinerary and
// location lists.
func (d *DisplayContext) ListColumns() []ColumnDef {
	if d.Compact() {
		return []ColumnDef{ColNum, ColName, ColInfo}
	}
	return []ColumnDef{ColNum, ColName, ColInfo, ColTags}
}

// HelpWidth is the wrap width for rendered help.
func (d *DisplayContext) HelpWidth() int {
	return max(d.TermWidth-MarkdownRenderMargin, minHelpWidth)
}
