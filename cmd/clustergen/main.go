package main

import (
	"errors"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
)

// version is set by ldflags during build
var version = "dev"

const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

type CLI struct {
	Version kong.VersionFlag `help:"Show version"`
	Strands StrandsCmd       `cmd:"" help:"Generate clusters of random DNA strands"`
	Points  PointsCmd        `cmd:"" help:"Generate clustered points using the strand mutation model"`
}

// Globals are bound into every command's Run method.
type Globals struct {
	Stdout io.Writer
	Stderr io.Writer
	Clock  quartz.Clock
}

// exitRequest carries a status requested by kong (help, version) out of the
// parser so run can return it instead of terminating the process.
type exitRequest int

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, quartz.NewReal()))
}

func run(args []string, stdout, stderr io.Writer, clock quartz.Clock) (code int) {
	defer func() {
		if r := recover(); r != nil {
			req, ok := r.(exitRequest)
			if !ok {
				panic(r)
			}
			code = int(req)
		}
	}()

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("clustergen"),
		kong.Description("Generate synthetic clustered strand datasets for testing clustering algorithms"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exitRequest(code)) }),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	if err != nil {
		io.WriteString(stderr, err.Error()+"\n")
		return exitFailure
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		var perr *kong.ParseError
		if errors.As(err, &perr) && perr.Context != nil {
			_ = perr.Context.PrintUsage(true)
		}
		return exitUsage
	}

	if err := ctx.Run(&Globals{Stdout: stdout, Stderr: stderr, Clock: clock}); err != nil {
		parser.Errorf("%s", err)
		return exitFailure
	}
	return exitSuccess
}
