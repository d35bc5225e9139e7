package cli

import (
	"fmt"
	"sort"
)

type CompleteCmd struct {
	DictOptions
	Prefix string `arg:"" help:"Prefix to complete"`
	Full   bool   `help:"Print the joined words instead of the bare suffixes"`
}

// Run executes the complete command.
func (cmd *CompleteCmd) Run(ctx *Context) error {
	if _, err := loadFiles(ctx, cmd.DictOptions); err != nil {
		return err
	}

	suffixes := ctx.Tree.Complete(cmd.Prefix)
	sort.Strings(suffixes)
	for _, suffix := range suffixes {
		if cmd.Full {
			fmt.Fprintln(ctx.Out, cmd.Prefix+suffix)
		} else {
			fmt.Fprintln(ctx.Out, suffix)
		}
	}

	ctx.Log.Info().
		Str("prefix", cmd.Prefix).
		Int("completions", len(suffixes)).
		Msg("completion finished")
	return nil
}
