// Package program defines the uasm program model and renders it into the
// textual listing consumed by the uasm assembler.
package program

// Program is a translation unit: a data section followed by a code section.
type Program struct {
	Data Data
	Code Code
}

// UASM renders the program with the default printer.
func (p Program) UASM() string {
	return Printer{}.Program(p)
}

func (p Program) String() string {
	return p.UASM()
}
