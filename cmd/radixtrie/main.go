package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/radixtrie/pkg/cli"
)

func main() {
	ctx := kong.Parse(&cli.CLI, kong.UsageOnError())
	if err := ctx.Run(cli.NewContext(cli.CLI.Verbose)); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}
