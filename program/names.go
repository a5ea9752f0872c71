package program

// VarName names a variable, a label or an exported symbol.
type VarName string

// NewVarName creates a variable name.
func NewVarName(name string) VarName {
	return VarName(name)
}

// UASM returns the name as it appears in the listing.
func (n VarName) UASM() string {
	return string(n)
}

// TypeName names the declared type of a variable, e.g. %SystemInt32.
type TypeName string

// NewTypeName creates a type name.
func NewTypeName(name string) TypeName {
	return TypeName(name)
}

// UASM returns the type name as it appears in the listing.
func (t TypeName) UASM() string {
	return string(t)
}
