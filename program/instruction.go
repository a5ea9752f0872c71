package program

// Opcode is the mnemonic of an instruction.
type Opcode string

const (
	OpNop          Opcode = "NOP"
	OpPush         Opcode = "PUSH"
	OpPop          Opcode = "POP"
	OpJumpIfFalse  Opcode = "JUMP_IF_FALSE"
	OpJump         Opcode = "JUMP"
	OpExtern       Opcode = "EXTERN"
	OpJumpIndirect Opcode = "JUMP_INDIRECT"
	OpCopy         Opcode = "COPY"

	// OpLabel is not emitted. Labels render as "name:".
	OpLabel Opcode = "LABEL"
)

// Inst is one line of the code section. The set of instructions is closed;
// every variant renders itself.
type Inst interface {
	Opcode() Opcode
	UASM() string
	isInst()
}

func bare(op Opcode) string {
	return opIndent + string(op)
}

func withArg(op Opcode, arg string) string {
	return opIndent + string(op) + ", " + arg
}

type Nop struct{}

func (Nop) Opcode() Opcode { return OpNop }
func (Nop) UASM() string   { return bare(OpNop) }
func (Nop) isInst()        {}

type Push struct {
	Addr Address
}

func (Push) Opcode() Opcode { return OpPush }
func (i Push) UASM() string { return withArg(OpPush, i.Addr.UASM()) }
func (Push) isInst()        {}

type Pop struct{}

func (Pop) Opcode() Opcode { return OpPop }
func (Pop) UASM() string   { return bare(OpPop) }
func (Pop) isInst()        {}

// JumpIfFalse pops the top of the stack and jumps to Addr when it is false.
type JumpIfFalse struct {
	Addr Address
}

func (JumpIfFalse) Opcode() Opcode { return OpJumpIfFalse }
func (i JumpIfFalse) UASM() string { return withArg(OpJumpIfFalse, i.Addr.UASM()) }
func (JumpIfFalse) isInst()        {}

type Jump struct {
	Addr Address
}

func (Jump) Opcode() Opcode { return OpJump }
func (i Jump) UASM() string { return withArg(OpJump, i.Addr.UASM()) }
func (Jump) isInst()        {}

// Extern calls an external function. Symbol is emitted verbatim.
type Extern struct {
	Symbol string
}

func (Extern) Opcode() Opcode { return OpExtern }
func (i Extern) UASM() string { return withArg(OpExtern, i.Symbol) }
func (Extern) isInst()        {}

// JumpIndirect jumps to the address stored in the variable at Addr.
type JumpIndirect struct {
	Addr Address
}

func (JumpIndirect) Opcode() Opcode { return OpJumpIndirect }
func (i JumpIndirect) UASM() string { return withArg(OpJumpIndirect, i.Addr.UASM()) }
func (JumpIndirect) isInst()        {}

type Copy struct{}

func (Copy) Opcode() Opcode { return OpCopy }
func (Copy) UASM() string   { return bare(OpCopy) }
func (Copy) isInst()        {}

// Label marks a jump target.
type Label struct {
	Name VarName
}

func (Label) Opcode() Opcode { return OpLabel }
func (i Label) UASM() string { return indent + i.Name.UASM() + ":" }
func (Label) isInst()        {}
