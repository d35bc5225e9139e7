package cli

type RenderCmd struct {
	DictOptions
	Format string `help:"Output format" enum:"list,tree,pretty" default:"tree"`
	Stats  bool   `help:"Append a summary table"`
}

// Run executes the render command.
func (cmd *RenderCmd) Run(ctx *Context) error {
	stats, err := loadFiles(ctx, cmd.DictOptions)
	if err != nil {
		return err
	}

	writer, err := NewWriter(cmd.Format)
	if err != nil {
		return err
	}
	if err := writer.Write(ctx.Tree, ctx.Out); err != nil {
		return err
	}

	if cmd.Stats {
		writeStats(ctx.Out, ctx.Tree, stats)
	}
	return nil
}
