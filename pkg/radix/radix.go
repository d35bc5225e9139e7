package radix

// Tree is a mutable radix trie over byte strings. The zero value is not
// usable; create one with New. A Tree must not be mutated concurrently.
type Tree struct {
	root *Node
	size int
}

// New returns an empty tree. The root is a sentinel with an empty label; it
// becomes terminal only if the empty string itself is inserted.
func New() *Tree {
	return &Tree{root: &Node{}}
}

// Len returns the number of stored words.
func (t *Tree) Len() int {
	return t.size
}

// Insert adds word to the tree. Inserting a word twice is a no-op: the tree
// shape and Len are unchanged by the second call.
func (t *Tree) Insert(word string) {
	node := t.root
	for {
		if word == "" {
			// landed exactly on a node boundary
			if !node.terminal {
				node.terminal = true
				t.size++
			}
			return
		}

		child, ok := node.children[word[0]]
		if !ok {
			// no edge starts with this byte, the whole suffix becomes one leaf
			node.addChild(&Node{label: word, terminal: true})
			t.size++
			return
		}

		k := commonPrefixLen(word, child.label)
		switch {
		case k == len(child.label):
			// label consumed, keep walking with the rest of the word
			word = word[k:]
			node = child
		case k == len(word):
			// word is a proper prefix of the label: split and mark the fork
			child.splitAt(k)
			child.terminal = true
			t.size++
			return
		default:
			// diverged inside the label: split and branch off the new suffix
			child.splitAt(k)
			child.addChild(&Node{label: word[k:], terminal: true})
			t.size++
			return
		}
	}
}

// Find walks query from the root and reports how it matched. The returned
// node is nil exactly when the match is MatchNone.
//
// With allowPartial false the query must end on a node boundary: ending in
// the middle of an edge label is MatchNone. With allowPartial true a query
// that ends mid-label reports MatchPrefix against the node that edge leads
// to; it never reports MatchWord, because the node spells a longer string
// than the query.
func (t *Tree) Find(query string, allowPartial bool) (*Node, Match) {
	node := t.root
	for query != "" {
		child, ok := node.children[query[0]]
		if !ok {
			return nil, MatchNone
		}

		k := commonPrefixLen(query, child.label)
		if k == len(child.label) {
			query = query[k:]
			node = child
			continue
		}
		if k == len(query) && allowPartial {
			// query ran out inside the edge label
			return child, MatchPrefix
		}
		return nil, MatchNone
	}

	if node.terminal {
		return node, MatchWord
	}
	return node, MatchPrefix
}

// Remove deletes word from the tree and reports whether it was present. A
// removal that empties a node detaches it, and a node left non-terminal
// with a single child is merged with that child, so the tree stays
// maximally compressed.
func (t *Tree) Remove(word string) bool {
	if !t.root.remove(word) {
		return false
	}
	t.size--
	return true
}

// remove clears the terminal flag at the end of word and compacts on the
// way back up. Each frame fixes its own child after the recursive call, so
// the cascade needs no parent pointers. The root is never detached or
// merged.
func (n *Node) remove(word string) bool {
	if word == "" {
		if !n.terminal {
			return false
		}
		n.terminal = false
		return true
	}

	child, ok := n.children[word[0]]
	if !ok {
		return false
	}
	k := commonPrefixLen(word, child.label)
	if k != len(child.label) {
		// word diverges or stops inside the edge, nothing stored here
		return false
	}
	if !child.remove(word[k:]) {
		return false
	}

	if !child.terminal {
		switch len(child.children) {
		case 0:
			delete(n.children, word[0])
		case 1:
			child.mergeChild()
		}
	}
	return true
}

// Complete returns the suffixes s for which prefix+s is a stored word. The
// prefix itself is never reported as an empty suffix: completions extend
// the prefix, they do not repeat it. The order of the result is
// unspecified. An unmatched prefix yields nil.
func (t *Tree) Complete(prefix string) []string {
	node := t.root
	carry := ""
	for rest := prefix; rest != ""; {
		child, ok := node.children[rest[0]]
		if !ok {
			return nil
		}
		k := commonPrefixLen(rest, child.label)
		if k < len(rest) && k < len(child.label) {
			return nil
		}
		node = child
		if k < len(child.label) {
			// prefix ends inside this edge; completions start with its tail
			carry = child.label[k:]
			break
		}
		rest = rest[k:]
	}

	var out []string
	node.collect(carry, &out)
	return out
}

// collect appends the suffix spelled from the landing point to every
// terminal node in the subtree. The empty accumulator is skipped, which is
// what keeps a stored prefix out of its own completion list.
func (n *Node) collect(acc string, out *[]string) {
	if n.terminal && acc != "" {
		*out = append(*out, acc)
	}
	for _, child := range n.sortedChildren() {
		child.collect(acc+child.label, out)
	}
}

// Words returns every stored word, assembled from the labels on the way
// down. The empty string appears if it was inserted.
func (t *Tree) Words() []string {
	var out []string
	t.root.words("", &out)
	return out
}

func (n *Node) words(acc string, out *[]string) {
	if n.terminal {
		*out = append(*out, acc)
	}
	for _, child := range n.sortedChildren() {
		child.words(acc+child.label, out)
	}
}

// WalkFunc receives one node per call during Walk: its depth below the
// root, its edge label and its terminal flag.
type WalkFunc func(depth int, label string, terminal bool)

// Walk visits every node exactly once in pre-order, root first, children in
// ascending first-byte order. It never mutates the tree.
func (t *Tree) Walk(fn WalkFunc) {
	t.root.walk(0, fn)
}

func (n *Node) walk(depth int, fn WalkFunc) {
	fn(depth, n.label, n.terminal)
	for _, child := range n.sortedChildren() {
		child.walk(depth+1, fn)
	}
}
