// Package render draws an adaptive Huffman tree as text, for the trace
// output of the ahuff command.  It only reads the tree.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/chronos-tachyon/ahuff"
)

const (
	colorTeal   = "#3ddbd9"
	colorBlue   = "#78a9ff"
	colorOrange = "#ff832b"
	colorGray   = "#8d8d8d"
)

// Options controls Render.
type Options struct {
	// Color enables terminal styling.  Without it, the last touched node
	// is marked with a trailing " <".
	Color bool
}

type styles struct {
	nyt      lipgloss.Style
	leaf     lipgloss.Style
	internal lipgloss.Style
	touched  lipgloss.Style
	edge     lipgloss.Style
}

func newStyles() styles {
	return styles{
		nyt:      lipgloss.NewStyle().Foreground(lipgloss.Color(colorTeal)).Italic(true),
		leaf:     lipgloss.NewStyle().Foreground(lipgloss.Color(colorBlue)),
		internal: lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)),
		touched:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorOrange)).Bold(true),
		edge:     lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)),
	}
}

type renderer struct {
	tree   *ahuff.Tree
	opts   Options
	styles styles
	sb     strings.Builder
}

// Render draws t sideways, root first, with each edge labelled by its bit.
// For example, after "ABABAB":
//
//	#765 (7)
//	├── 0: 'B' #762 (3)
//	└── 1: #766 (4)
//	    ├── 0: NYT #764 (0)
//	    └── 1: 'A' #763 (3)
//
func Render(t *ahuff.Tree, opts Options) string {
	r := &renderer{tree: t, opts: opts, styles: newStyles()}
	root := t.Root()
	r.sb.WriteString(r.label(root))
	r.sb.WriteByte('\n')
	r.children(root, "")
	return r.sb.String()
}

func (r *renderer) children(id ahuff.NodeID, prefix string) {
	n := r.tree.Node(id)
	if n.IsLeaf() {
		return
	}
	r.branch(n.Left, "0", prefix, false)
	r.branch(n.Right, "1", prefix, true)
}

func (r *renderer) branch(id ahuff.NodeID, bit string, prefix string, last bool) {
	connector, indent := "├── ", "│   "
	if last {
		connector, indent = "└── ", "    "
	}
	r.sb.WriteString(prefix)
	r.sb.WriteString(r.style(r.styles.edge, connector+bit+":"))
	r.sb.WriteByte(' ')
	r.sb.WriteString(r.label(id))
	r.sb.WriteByte('\n')
	r.children(id, prefix+indent)
}

func (r *renderer) label(id ahuff.NodeID) string {
	n := r.tree.Node(id)
	var text string
	var style lipgloss.Style
	switch {
	case n.IsNYT:
		text = fmt.Sprintf("NYT #%d (%d)", n.Number, n.Count)
		style = r.styles.nyt
	case n.IsLeaf():
		text = fmt.Sprintf("%s #%d (%d)", SymbolString(n.Symbol), n.Number, n.Count)
		style = r.styles.leaf
	default:
		text = fmt.Sprintf("#%d (%d)", n.Number, n.Count)
		style = r.styles.internal
	}

	if id != r.tree.LastTouched() {
		return r.style(style, text)
	}
	if r.opts.Color {
		return r.styles.touched.Render(text)
	}
	return text + " <"
}

func (r *renderer) style(s lipgloss.Style, text string) string {
	if !r.opts.Color {
		return text
	}
	return s.Render(text)
}

// Table lists every symbol's current code and count, followed by the NYT
// code, in ascending symbol order.
func Table(t *ahuff.Tree) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SYMBOL", "CODE", "COUNT", "NUMBER")
	for _, sym := range t.Symbols() {
		id, _ := t.Leaf(sym)
		n := t.Node(id)
		tbl.Row(SymbolString(sym), codeString(t, id), strconv.FormatUint(uint64(n.Count), 10), strconv.Itoa(n.Number))
	}
	nyt := t.NYT()
	tbl.Row("NYT", codeString(t, nyt), "0", strconv.Itoa(t.Node(nyt).Number))
	return tbl.String()
}

// SymbolString formats a symbol as a quoted character.
func SymbolString(sym ahuff.Symbol) string {
	return strconv.QuoteRune(rune(sym))
}

func codeString(t *ahuff.Tree, id ahuff.NodeID) string {
	if code := t.Code(id); code.Len() != 0 {
		return code.String()
	}
	return `""`
}
