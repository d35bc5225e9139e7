package cli

import "fmt"

type PruneCmd struct {
	DictOptions
	Words  []string `arg:"" help:"Words to remove from the loaded dictionary"`
	Format string   `help:"Render the remaining tree" enum:"none,list,tree,pretty" default:"none"`
}

// Run executes the prune command: loads the dictionary, removes the given
// words, and optionally renders what is left.
func (cmd *PruneCmd) Run(ctx *Context) error {
	if _, err := loadFiles(ctx, cmd.DictOptions); err != nil {
		return err
	}

	for _, word := range cmd.Words {
		if ctx.Tree.Remove(word) {
			fmt.Fprintf(ctx.Out, "removed %q\n", word)
		} else {
			fmt.Fprintf(ctx.Out, "not present %q\n", word)
		}
	}

	ctx.Log.Info().Int("remaining", ctx.Tree.Len()).Msg("prune finished")

	if cmd.Format == "none" {
		return nil
	}
	writer, err := NewWriter(cmd.Format)
	if err != nil {
		return err
	}
	return writer.Write(ctx.Tree, ctx.Out)
}
