package program

import "strings"

// ExportStyle selects how an export list with two or more names is joined.
type ExportStyle int

const (
	// LegacyExports puts ", " before every name, including the first one.
	// Existing listings were produced this way.
	LegacyExports ExportStyle = iota

	// CleanExports joins names with ", " and nothing in front.
	CleanExports
)

// Printer renders programs. The zero value produces the legacy listing.
type Printer struct {
	ExportStyle ExportStyle
}

// Program renders the data section, a blank line and the code section.
func (p Printer) Program(prog Program) string {
	return p.Data(prog.Data) + "\n" + p.Code(prog.Code)
}

// Data renders a data section.
func (p Printer) Data(d Data) string {
	decls := make([]string, 0, len(d.Decls))
	for _, decl := range d.Decls {
		decls = append(decls, decl.UASM())
	}

	return section(dataStart, dataEnd, p.ExportLine(d.Exports), decls)
}

// Code renders a code section.
func (p Printer) Code(c Code) string {
	insts := make([]string, 0, len(c.Insts))
	for _, inst := range c.Insts {
		insts = append(insts, inst.UASM())
	}

	return section(codeStart, codeEnd, p.ExportLine(c.Exports), insts)
}

// ExportLine renders the ".export" line of a section. An empty list still
// leaves the space after the directive.
func (p Printer) ExportLine(exports []VarName) string {
	return indent + exportDirective + " " + p.joinExports(exports)
}

func (p Printer) joinExports(exports []VarName) string {
	switch {
	case len(exports) == 0:
		return ""
	case len(exports) == 1:
		return exports[0].UASM()
	}

	var b strings.Builder
	for i, name := range exports {
		if i > 0 || p.ExportStyle == LegacyExports {
			b.WriteString(", ")
		}
		b.WriteString(name.UASM())
	}

	return b.String()
}
