package radix

import "fmt"

// Validate walks the whole tree and checks its structural invariants:
// children are keyed by the first byte of non-empty labels, and every
// non-terminal node below the root either forks (two or more children) or
// is gone — a non-terminal leaf is dangling and a non-terminal single-child
// node missed a merge. A violation is a bug in the mutation logic, so this
// exists for tests and debugging, not for runtime recovery.
func (t *Tree) Validate() error {
	if t.root.label != "" {
		return fmt.Errorf("root carries label %q, want empty", t.root.label)
	}
	return t.root.validate(true, "")
}

func (n *Node) validate(isRoot bool, path string) error {
	if !isRoot {
		if n.label == "" {
			return fmt.Errorf("node below %q has an empty label", path)
		}
		if !n.terminal && len(n.children) == 0 {
			return fmt.Errorf("non-terminal leaf %q left dangling", path)
		}
		if !n.terminal && len(n.children) == 1 {
			return fmt.Errorf("non-terminal node %q holds a single unmerged child", path)
		}
	}
	for first, child := range n.children {
		if child == nil {
			return fmt.Errorf("nil child under %q at byte %q", path, first)
		}
		if child.label == "" || child.label[0] != first {
			return fmt.Errorf("child of %q keyed by %q but labeled %q", path, first, child.label)
		}
		if err := child.validate(false, path+child.label); err != nil {
			return err
		}
	}
	return nil
}
