// Package emit renders programs obtained from a Source into a writer.
package emit

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/sarchlab/uasm/program"
)

// Builder can create emitters.
type Builder struct {
	source  Source
	printer program.Printer
}

// WithSource sets where the program comes from.
func (b Builder) WithSource(source Source) Builder {
	b.source = source
	return b
}

// WithPrinter sets the printer used to render the program.
func (b Builder) WithPrinter(printer program.Printer) Builder {
	b.printer = printer
	return b
}

// Build creates an emitter.
func (b Builder) Build(name string) *Emitter {
	if b.source == nil {
		panic("emitter " + name + " needs a source")
	}

	return &Emitter{
		name:    name,
		source:  b.source,
		printer: b.printer,
	}
}

// Emitter loads a program and writes its listing.
type Emitter struct {
	name    string
	source  Source
	printer program.Printer
}

// Name returns the name of the emitter.
func (e *Emitter) Name() string {
	return e.name
}

// Render loads the program and returns its listing.
func (e *Emitter) Render(ctx context.Context) (string, error) {
	p, err := e.source.Load(ctx)
	if err != nil {
		return "", errors.Wrapf(err, "%s: load program", e.name)
	}

	text := e.printer.Program(p)

	Trace("Rendered",
		"Emitter", e.name,
		"DataExports", len(p.Data.Exports),
		"Decls", len(p.Data.Decls),
		"CodeExports", len(p.Code.Exports),
		"Insts", len(p.Code.Insts),
		"Bytes", len(text),
	)

	return text, nil
}

// Emit renders the program and writes it to w.
func (e *Emitter) Emit(ctx context.Context, w io.Writer) error {
	text, err := e.Render(ctx)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return errors.Wrapf(err, "%s: before write", e.name)
	}

	n, err := io.WriteString(w, text)
	if err != nil {
		return errors.Wrapf(err, "%s: write listing", e.name)
	}

	Trace("Wrote", "Emitter", e.name, "Bytes", n)

	return nil
}
