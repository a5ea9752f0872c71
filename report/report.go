// Package report summarizes the contents of a program.
package report

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/uasm/program"
)

// OpcodeCount is the number of instructions that share an opcode.
type OpcodeCount struct {
	Opcode program.Opcode
	Count  int
}

// Summary counts what a program contains. It does not check anything.
type Summary struct {
	DataExports int
	Decls       int
	CodeExports int
	Insts       int
	Labels      int
	Opcodes     []OpcodeCount
}

// Summarize counts the members of p. Opcodes are sorted by name.
func Summarize(p program.Program) Summary {
	s := Summary{
		DataExports: len(p.Data.Exports),
		Decls:       len(p.Data.Decls),
		CodeExports: len(p.Code.Exports),
		Insts:       len(p.Code.Insts),
	}

	counts := make(map[program.Opcode]int)
	for _, inst := range p.Code.Insts {
		if inst.Opcode() == program.OpLabel {
			s.Labels++
		}
		counts[inst.Opcode()]++
	}

	for op, n := range counts {
		s.Opcodes = append(s.Opcodes, OpcodeCount{Opcode: op, Count: n})
	}
	sort.Slice(s.Opcodes, func(i, j int) bool {
		return s.Opcodes[i].Opcode < s.Opcodes[j].Opcode
	})

	return s
}

// Table renders the summary as a text table.
func (s Summary) Table() string {
	t := table.NewWriter()
	t.SetTitle("Program Summary")
	t.AppendHeader(table.Row{"Item", "Count"})

	t.AppendRow(table.Row{"Data exports", s.DataExports})
	t.AppendRow(table.Row{"Declarations", s.Decls})
	t.AppendRow(table.Row{"Code exports", s.CodeExports})
	t.AppendRow(table.Row{"Instructions", s.Insts})
	t.AppendRow(table.Row{"Labels", s.Labels})

	if len(s.Opcodes) > 0 {
		t.AppendSeparator()
		for _, oc := range s.Opcodes {
			t.AppendRow(table.Row{fmt.Sprintf("  %s", oc.Opcode), oc.Count})
		}
	}

	return t.Render()
}
