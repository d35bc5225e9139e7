package radix

// Match is the outcome of a Find. Not-found is a regular negative result,
// not an error: callers branch on the three cases.
type Match int

const (
	// MatchNone means no path in the tree spells the query.
	MatchNone Match = iota
	// MatchPrefix means the path exists but only as a prefix of stored
	// words; the query itself is not stored.
	MatchPrefix
	// MatchWord means the query is a stored word.
	MatchWord
)

func (m Match) String() string {
	switch m {
	case MatchNone:
		return "not found"
	case MatchPrefix:
		return "prefix only"
	case MatchWord:
		return "word"
	}
	panic("[BUG] Match.String: unknown match value")
}
