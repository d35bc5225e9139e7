package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/khalid-nowaf/radixtrie/pkg/radix"
)

// Writer renders a tree to the supplied sink in one output format.
type Writer interface {
	Write(tree *radix.Tree, out io.Writer) error
}

// NewWriter maps a format name to its writer. An unknown format is an
// error, not a silent fallback.
func NewWriter(format string) (Writer, error) {
	switch format {
	case "list":
		return ListWriter{}, nil
	case "tree":
		return TreeWriter{}, nil
	case "pretty":
		return PrettyWriter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// ListWriter passes through the engine's word-per-line dump.
type ListWriter struct{}

func (ListWriter) Write(tree *radix.Tree, out io.Writer) error {
	return tree.Render(radix.RenderList, out)
}

// TreeWriter passes through the engine's markdown-style structural dump.
type TreeWriter struct{}

func (TreeWriter) Write(tree *radix.Tree, out io.Writer) error {
	return tree.Render(radix.RenderTree, out)
}

// PrettyWriter draws the structure with connected box characters. Terminal
// nodes are bold and carry the same '*' glyph the plain tree dump uses.
type PrettyWriter struct{}

func (PrettyWriter) Write(tree *radix.Tree, out io.Writer) error {
	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedRounded)

	current := 0
	tree.Walk(func(depth int, label string, terminal bool) {
		for current < depth {
			l.Indent()
			current++
		}
		for current > depth {
			l.UnIndent()
			current--
		}

		item := label
		if depth == 0 {
			item = "(root)"
		}
		if terminal {
			item = text.Bold.Sprint(item) + " *"
		}
		l.AppendItem(item)
	})

	_, err := fmt.Fprintln(out, l.Render())
	return err
}

// writeStats appends a small summary table after a render.
func writeStats(out io.Writer, tree *radix.Tree, stats *Stats) {
	nodes, maxDepth := 0, 0
	tree.Walk(func(depth int, label string, terminal bool) {
		nodes++
		if depth > maxDepth {
			maxDepth = depth
		}
	})

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRow(table.Row{"files loaded", stats.Files})
	t.AppendRow(table.Row{"words read", stats.Loaded})
	t.AppendRow(table.Row{"words stored", tree.Len()})
	t.AppendRow(table.Row{"nodes", nodes})
	t.AppendRow(table.Row{"max depth", maxDepth})
	t.Render()
}
