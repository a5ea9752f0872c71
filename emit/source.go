package emit

import (
	"context"

	"github.com/sarchlab/uasm/loader"
	"github.com/sarchlab/uasm/program"
)

// A Source provides the program to emit.
type Source interface {
	Load(ctx context.Context) (program.Program, error)
}

// StaticSource is a program that is already built.
type StaticSource struct {
	Program program.Program
}

// Load returns the program.
func (s StaticSource) Load(ctx context.Context) (program.Program, error) {
	return s.Program, ctx.Err()
}

// FileSource loads a YAML program description.
type FileSource struct {
	Path string
}

// Load reads and decodes the file.
func (s FileSource) Load(ctx context.Context) (program.Program, error) {
	if err := ctx.Err(); err != nil {
		return program.Program{}, err
	}

	return loader.LoadFile(s.Path)
}
