package cli

import (
	"io"
	"os"

	"github.com/khalid-nowaf/radixtrie/pkg/radix"
	"github.com/rs/zerolog"
)

// Context carries the shared state every command runs against: the tree the
// dictionaries load into, the logger, and the output sink.
type Context struct {
	Tree *radix.Tree
	Log  zerolog.Logger
	Out  io.Writer
}

// CLI is the top-level command set parsed by kong.
var CLI struct {
	Complete CompleteCmd `cmd:"" help:"Load word files and list the completions of a prefix"`
	Lookup   LookupCmd   `cmd:"" help:"Load word files and report how a query matches"`
	Prune    PruneCmd    `cmd:"" help:"Load word files, remove words, and show what remains"`
	Render   RenderCmd   `cmd:"" help:"Load word files and dump the tree"`
	Verbose  bool        `help:"Enable debug logging" short:"v"`
}

// DictOptions are the dictionary-loading flags shared by every command.
type DictOptions struct {
	Files   []string `help:"Word files to load (plain text, CSV or JSON)" short:"f" name:"file" type:"existingfile" required:""`
	WordKey string   `help:"Column or field holding the word in CSV/JSON files" default:"word"`
}

// NewContext builds the run context with a fresh tree, a console logger on
// stderr and stdout as the output sink.
func NewContext(verbose bool) *Context {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	return &Context{
		Tree: radix.New(),
		Log:  logger,
		Out:  os.Stdout,
	}
}

// Stats accumulates per-run load counters for the summary output.
type Stats struct {
	Files  int
	Loaded int
}

// loadFiles feeds every word from the configured files into the context
// tree.
func loadFiles(ctx *Context, opts DictOptions) (*Stats, error) {
	stats := &Stats{}
	for _, file := range opts.Files {
		count := 0
		err := parseFile(file, opts.WordKey, func(word string) error {
			ctx.Tree.Insert(word)
			count++
			return nil
		})
		if err != nil {
			return stats, err
		}
		stats.Files++
		stats.Loaded += count
		ctx.Log.Debug().Str("file", file).Int("words", count).Msg("loaded word file")
	}
	ctx.Log.Info().
		Int("words", stats.Loaded).
		Int("stored", ctx.Tree.Len()).
		Msg("dictionary ready")
	return stats, nil
}
