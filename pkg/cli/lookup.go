package cli

import "fmt"

type LookupCmd struct {
	DictOptions
	Query  string `arg:"" help:"Query to look up"`
	Prefix bool   `help:"Allow the query to end inside an edge label"`
}

// Run executes the lookup command and prints one of the three outcomes:
// not found, prefix only, or word.
func (cmd *LookupCmd) Run(ctx *Context) error {
	if _, err := loadFiles(ctx, cmd.DictOptions); err != nil {
		return err
	}

	node, match := ctx.Tree.Find(cmd.Query, cmd.Prefix)
	fmt.Fprintf(ctx.Out, "%q: %s\n", cmd.Query, match)

	if node != nil {
		ctx.Log.Debug().
			Str("label", node.Label()).
			Bool("terminal", node.Terminal()).
			Msg("landed on node")
	}
	return nil
}
