package program

import "fmt"

// Address is an instruction operand. It is either a VarAddr or an Immediate.
type Address interface {
	UASM() string
	isAddress()
}

// VarAddr refers to a named location.
type VarAddr VarName

// UASM returns the variable name.
func (a VarAddr) UASM() string {
	return VarName(a).UASM()
}

func (VarAddr) isAddress() {}

// Immediate is an absolute 32-bit offset.
type Immediate int32

// UASM prints the two's-complement bit pattern in uppercase hex without
// padding, so -1 becomes 0xFFFFFFFF.
func (i Immediate) UASM() string {
	return fmt.Sprintf("0x%X", uint32(i))
}

func (Immediate) isAddress() {}
