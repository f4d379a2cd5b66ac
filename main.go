package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/spikeekips/ulidgen/cmds"
)

var (
	Version = "v0.0.0"
	options = []kong.Option{
		kong.Name("ulidgen"),
		kong.Description("generate and inspect ulids"),
		cmds.LogVars,
	}
)

type mainflags struct {
	Generate cmds.GenerateCommand `cmd:"" name:"generate" help:"generate ulids"`
	Decode   cmds.DecodeCommand   `cmd:"" name:"decode" help:"decode ulids"`
	Encode   cmds.EncodeCommand   `cmd:"" name:"encode" help:"encode integer or timestamp"`
	Version  struct{}             `cmd:"" name:"version" help:"print version"`
}

func main() {
	flags := mainflags{
		Generate: cmds.NewGenerateCommand(),
		Decode:   cmds.NewDecodeCommand(),
		Encode:   cmds.NewEncodeCommand(),
	}

	ctx := kong.Parse(&flags, options...)

	version := cmds.Version(Version)
	if err := version.IsValid(nil); err != nil {
		ctx.FatalIfErrorf(err)
	}

	if ctx.Command() == "version" {
		_, _ = fmt.Fprintln(os.Stdout, version)

		os.Exit(0)
	}

	if err := ctx.Run(version); err != nil {
		ctx.FatalIfErrorf(err)
	}

	os.Exit(0)
}
