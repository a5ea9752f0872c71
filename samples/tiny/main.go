package main

import (
	"fmt"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/uasm/program"
)

func main() {
	p := program.Program{
		Data: program.Data{
			Exports: []program.VarName{program.NewVarName("Target")},
			Decls: []program.VarDecl{
				{
					Name: program.NewVarName("Target"),
					Type: program.NewTypeName("%UnityEngineTransform"),
					Init: program.This,
				},
			},
		},
		Code: program.Code{
			Exports: []program.VarName{program.NewVarName("_update")},
			Insts: []program.Inst{
				program.Label{Name: program.NewVarName("_update")},
				program.Jump{Addr: program.Immediate(0xffffff)},
			},
		},
	}

	fmt.Print(p)

	atexit.Exit(0)
}
