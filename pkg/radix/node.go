package radix

import "sort"

// Node is a single node in the radix trie. The label is the edge from the
// node's parent; the concatenation of labels on the root-to-node path is the
// string the node spells. Children are keyed by the first byte of their
// label, which makes sibling first bytes unique by construction.
type Node struct {
	label    string
	terminal bool
	children map[byte]*Node
}

// Label returns the edge label leading into this node. It is empty only for
// the root.
func (n *Node) Label() string {
	return n.label
}

// Terminal reports whether the path to this node spells a stored word, not
// merely a prefix of one.
func (n *Node) Terminal() bool {
	return n.terminal
}

// IsLeaf checks if the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// adds a child under its label's first byte. The slot must be free; a
// collision means a split was skipped somewhere.
func (n *Node) addChild(child *Node) *Node {
	if child.label == "" {
		panic("[BUG] addChild: child label must not be empty")
	}
	if n.children == nil {
		n.children = make(map[byte]*Node)
	}
	first := child.label[0]
	if _, taken := n.children[first]; taken {
		panic("[BUG] addChild: sibling with the same first byte already exists")
	}
	n.children[first] = child
	return child
}

// splitAt breaks the node's label at k, pushing the tail of the label, the
// terminal flag and all children down into a new single child. The receiver
// keeps the head of the label and becomes a non-terminal fork point, so the
// split needs no access to the parent.
func (n *Node) splitAt(k int) {
	if k <= 0 || k >= len(n.label) {
		panic("[BUG] splitAt: split point must fall inside the label")
	}
	tail := &Node{
		label:    n.label[k:],
		terminal: n.terminal,
		children: n.children,
	}
	n.label = n.label[:k]
	n.terminal = false
	n.children = map[byte]*Node{tail.label[0]: tail}
}

// mergeChild collapses the node with its only child: labels concatenate and
// the child's terminal flag and children move up. Restores maximal
// compression after a removal.
func (n *Node) mergeChild() {
	if len(n.children) != 1 {
		panic("[BUG] mergeChild: node must have exactly one child")
	}
	for _, only := range n.children {
		n.label += only.label
		n.terminal = only.terminal
		n.children = only.children
	}
}

// sortedChildren returns the children ordered by first byte, so traversals
// visit them in a stable order.
func (n *Node) sortedChildren() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	kids := make([]*Node, 0, len(n.children))
	for _, child := range n.children {
		kids = append(kids, child)
	}
	sort.Slice(kids, func(i, j int) bool { return kids[i].label[0] < kids[j].label[0] })
	return kids
}

// commonPrefixLen returns the length of the longest common prefix of a and b.
func commonPrefixLen(a, b string) int {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}
	i := 0
	for i < limit && a[i] == b[i] {
		i++
	}
	return i
}
