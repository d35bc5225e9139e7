package radix

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// RenderMode selects one of the two diagnostic dumps Render produces.
type RenderMode string

const (
	// RenderList emits every stored word, one per line.
	RenderList RenderMode = "list"
	// RenderTree emits every node: a run of '#' per depth level, the edge
	// label, and a '*' glyph on terminal nodes.
	RenderTree RenderMode = "tree"
)

// Render writes a read-only dump of the tree to w. An unrecognized mode is
// an error and writes nothing. The caller supplies the sink; the tree never
// picks an output channel itself.
func (t *Tree) Render(mode RenderMode, w io.Writer) error {
	switch mode {
	case RenderList, RenderTree:
	default:
		return fmt.Errorf("radix: unknown render mode %q", mode)
	}

	buf := bufio.NewWriter(w)
	if mode == RenderList {
		for _, word := range t.Words() {
			fmt.Fprintln(buf, word)
		}
	} else {
		t.Walk(func(depth int, label string, terminal bool) {
			marker := strings.Repeat("#", depth+1)
			if terminal {
				fmt.Fprintf(buf, "%s %s *\n", marker, label)
			} else {
				fmt.Fprintf(buf, "%s %s\n", marker, label)
			}
		})
	}
	return buf.Flush()
}
