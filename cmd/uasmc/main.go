// Command uasmc turns a YAML program description into a uasm listing.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/uasm/emit"
	"github.com/sarchlab/uasm/loader"
	"github.com/sarchlab/uasm/program"
	"github.com/sarchlab/uasm/report"
)

var (
	inPath       = flag.String("in", "", "program description (YAML); stdin if empty")
	outPath      = flag.String("out", "", "listing output; stdout if empty")
	cleanExports = flag.Bool("clean-exports", false, "join export names without a leading separator")
	stats        = flag.Bool("stats", false, "print a program summary to stderr")
	dump         = flag.Bool("dump", false, "dump the decoded program to stderr")
	verbose      = flag.Bool("v", false, "trace logging to stderr")
)

type readerSource struct {
	r io.Reader
}

func (s readerSource) Load(ctx context.Context) (program.Program, error) {
	if err := ctx.Err(); err != nil {
		return program.Program{}, err
	}

	return loader.Load(s.r)
}

// inspectSource shows the program on stderr before it is rendered.
type inspectSource struct {
	emit.Source
}

func (s inspectSource) Load(ctx context.Context) (program.Program, error) {
	p, err := s.Source.Load(ctx)
	if err != nil {
		return p, err
	}

	if *dump {
		spew.Fdump(os.Stderr, p)
	}
	if *stats {
		fmt.Fprintln(os.Stderr, report.Summarize(p).Table())
	}

	return p, nil
}

func run() error {
	var src emit.Source = readerSource{r: os.Stdin}
	if *inPath != "" {
		src = emit.FileSource{Path: *inPath}
	}

	printer := program.Printer{}
	if *cleanExports {
		printer.ExportStyle = program.CleanExports
	}

	e := emit.Builder{}.
		WithSource(inspectSource{Source: src}).
		WithPrinter(printer).
		Build("uasmc")

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		atexit.Register(func() { f.Close() })
		out = f
	}

	return e.Emit(context.Background(), out)
}

func main() {
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = emit.LevelTrace
	}
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "uasmc:", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
