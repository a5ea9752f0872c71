package program

// Literal is the initial value of a variable declaration.
type Literal int

const (
	Null Literal = iota
	This
)

var literalTokens = [...]string{
	Null: "null",
	This: "this",
}

// UASM returns the literal token.
func (l Literal) UASM() string {
	return literalTokens[l]
}

func (l Literal) String() string {
	return l.UASM()
}
