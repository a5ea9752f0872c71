package program

import "strings"

const (
	indent   = "    "
	opIndent = indent + indent

	exportDirective = ".export"

	dataStart = ".data_start"
	dataEnd   = ".data_end"
	codeStart = ".code_start"
	codeEnd   = ".code_end"
)

// VarDecl declares one variable of the data section.
type VarDecl struct {
	Name VarName
	Type TypeName
	Init Literal
}

// UASM renders the declaration as "    name: type, init".
func (d VarDecl) UASM() string {
	return indent + d.Name.UASM() + ": " + d.Type.UASM() + ", " + d.Init.UASM()
}

// Data is the global variable table of a program.
type Data struct {
	Exports []VarName
	Decls   []VarDecl
}

// UASM renders the data section with the default printer.
func (d Data) UASM() string {
	return Printer{}.Data(d)
}

// Code is the instruction stream of a program.
type Code struct {
	Exports []VarName
	Insts   []Inst
}

// UASM renders the code section with the default printer.
func (c Code) UASM() string {
	return Printer{}.Code(c)
}

// section lays out a section. Every member line is preceded by a newline,
// which leaves one blank line after the export line.
func section(start, end, exportLine string, members []string) string {
	var b strings.Builder

	b.WriteString(start)
	b.WriteByte('\n')
	b.WriteString(exportLine)
	b.WriteByte('\n')

	for _, m := range members {
		b.WriteByte('\n')
		b.WriteString(m)
	}

	b.WriteByte('\n')
	b.WriteString(end)
	b.WriteByte('\n')

	return b.String()
}
