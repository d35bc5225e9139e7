// ## Overview
// Package radix implements a compressed prefix trie (radix trie) keyed by
// strings. Edges carry multi-character labels, so lookup, insertion, removal
// and prefix completion all run in time proportional to the length of the
// operand rather than the number of stored words. The tree stays maximally
// compressed under every mutation: no two sibling edges share a first
// character, and a non-terminal node never keeps a single mergeable child.
//
// ## Example usage:
//
//	t := radix.New()
//	t.Insert("cartoon")
//	t.Insert("cart")
//	t.Insert("car")
//
//	if _, m := t.Find("car", false); m == radix.MatchWord {
//	    fmt.Println("car is stored")
//	}
//
//	// Complete returns the suffixes that extend the prefix.
//	fmt.Println(t.Complete("car")) // [t toon]
//
//	t.Remove("cart")
//	t.Render(radix.RenderTree, os.Stdout)
//
// The tree is not safe for concurrent use; callers that share one tree
// across goroutines must serialize access themselves.
package radix
