// Package loader reads program descriptions written in YAML.
package loader

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/uasm/program"
)

type programFile struct {
	Data dataFile `yaml:"data"`
	Code codeFile `yaml:"code"`
}

type dataFile struct {
	Exports []string   `yaml:"exports"`
	Decls   []declFile `yaml:"decls"`
}

type declFile struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	// Kept as a node so that an unquoted null is not decoded as "".
	Init yaml.Node `yaml:"init"`
}

type codeFile struct {
	Exports []string    `yaml:"exports"`
	Insts   []yaml.Node `yaml:"insts"`
}

// LoadFile reads the program description at path.
func LoadFile(path string) (program.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return program.Program{}, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	p, err := Load(f)
	if err != nil {
		return program.Program{}, errors.Wrapf(err, "load %s", path)
	}

	return p, nil
}

// Load decodes a program description. An empty document is an empty
// program.
func Load(r io.Reader) (program.Program, error) {
	var pf programFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&pf); err != nil {
		if err == io.EOF {
			return program.Program{}, nil
		}
		return program.Program{}, errors.Wrap(err, "decode yaml")
	}

	data, err := pf.Data.convert()
	if err != nil {
		return program.Program{}, err
	}

	code, err := pf.Code.convert()
	if err != nil {
		return program.Program{}, err
	}

	return program.Program{Data: data, Code: code}, nil
}

func names(raw []string) []program.VarName {
	if len(raw) == 0 {
		return nil
	}

	out := make([]program.VarName, len(raw))
	for i, n := range raw {
		out[i] = program.NewVarName(n)
	}

	return out
}

func (d dataFile) convert() (program.Data, error) {
	data := program.Data{Exports: names(d.Exports)}

	for i, decl := range d.Decls {
		init, err := parseLiteral(decl.Init.Value)
		if err != nil {
			return program.Data{}, errors.Wrapf(err, "data decl %d (%s)", i, decl.Name)
		}

		data.Decls = append(data.Decls, program.VarDecl{
			Name: program.NewVarName(decl.Name),
			Type: program.NewTypeName(decl.Type),
			Init: init,
		})
	}

	return data, nil
}

func (c codeFile) convert() (program.Code, error) {
	code := program.Code{Exports: names(c.Exports)}

	for i := range c.Insts {
		inst, err := parseInst(&c.Insts[i])
		if err != nil {
			return program.Code{}, errors.Wrapf(err, "code inst %d (line %d)", i, c.Insts[i].Line)
		}

		code.Insts = append(code.Insts, inst)
	}

	return code, nil
}

func parseLiteral(s string) (program.Literal, error) {
	switch s {
	case "null":
		return program.Null, nil
	case "this":
		return program.This, nil
	}

	return 0, errors.Errorf("unknown literal %q", s)
}

var operandless = map[string]program.Inst{
	"nop":  program.Nop{},
	"pop":  program.Pop{},
	"copy": program.Copy{},
}

var addressed = map[string]func(program.Address) program.Inst{
	"push":          func(a program.Address) program.Inst { return program.Push{Addr: a} },
	"jump_if_false": func(a program.Address) program.Inst { return program.JumpIfFalse{Addr: a} },
	"jump":          func(a program.Address) program.Inst { return program.Jump{Addr: a} },
	"jump_indirect": func(a program.Address) program.Inst { return program.JumpIndirect{Addr: a} },
}

// parseInst accepts either a bare opcode ("nop") or a single-key mapping
// from opcode to operand ("push: counter").
func parseInst(n *yaml.Node) (program.Inst, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		op := strings.ToLower(n.Value)
		if inst, ok := operandless[op]; ok {
			return inst, nil
		}
		if _, ok := addressed[op]; ok || op == "extern" || op == "label" {
			return nil, errors.Errorf("%s needs an operand", op)
		}
		return nil, errors.Errorf("unknown opcode %q", n.Value)

	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return nil, errors.Errorf("expected one opcode, got %d", len(n.Content)/2)
		}

		key, val := n.Content[0], n.Content[1]
		if val.Kind != yaml.ScalarNode {
			return nil, errors.Errorf("operand of %s must be a scalar", key.Value)
		}

		return buildInst(strings.ToLower(key.Value), val.Value)
	}

	return nil, errors.Errorf("unexpected instruction node at line %d", n.Line)
}

func buildInst(op, operand string) (program.Inst, error) {
	switch op {
	case "label":
		return program.Label{Name: program.NewVarName(operand)}, nil
	case "extern":
		return program.Extern{Symbol: operand}, nil
	}

	if build, ok := addressed[op]; ok {
		addr, err := ParseAddress(operand)
		if err != nil {
			return nil, errors.Wrapf(err, "operand of %s", op)
		}
		return build(addr), nil
	}

	if _, ok := operandless[op]; ok {
		return nil, errors.Errorf("%s takes no operand", op)
	}

	return nil, errors.Errorf("unknown opcode %q", op)
}

// ParseAddress turns an operand into an address. Hex operands (0x...) are
// taken as a 32-bit pattern, decimal operands must fit in an int32, and
// anything else names a variable.
func ParseAddress(s string) (program.Address, error) {
	if s == "" {
		return nil, errors.New("empty address")
	}

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "hex address %q", s)
		}
		return program.Immediate(int32(uint32(v))), nil
	}

	v, err := strconv.ParseInt(s, 10, 32)
	if err == nil {
		return program.Immediate(int32(v)), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return nil, errors.Wrapf(err, "address %q", s)
	}

	return program.VarAddr(s), nil
}
