// Copyright 2024, Charles Stevenson <brucesdad13@gmail.com>

package hack

import (
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Assembler drives the two-pass translation from Hack assembly text to
// machine words.
type Assembler struct {
	Verbose bool         // If set, verbosely logs the assembly actions.
	Symbols *SymbolTable // Table of the most recent run; rebuilt by Assemble.

	variable uint16 // Next free variable address.
}

var numericRe = regexp.MustCompile(`^\d+$`)

// Assemble runs both passes over the input. The input is rewound with an
// explicit seek between passes; both passes observe the same line sequence.
func (asm *Assembler) Assemble(input io.ReadSeeker) (prog *Program, err error) {
	asm.Symbols = NewSymbolTable()
	asm.variable = VARIABLE_BASE

	err = asm.resolveLabels(input)
	if err != nil {
		return
	}

	_, err = input.Seek(0, io.SeekStart)
	if err != nil {
		return
	}

	return asm.encode(input)
}

// resolveLabels is the first pass: bind each label to the count of real
// instructions preceding it. Labels themselves do not advance the count.
func (asm *Assembler) resolveLabels(input io.Reader) (err error) {
	parser := NewParser(input)

	lineNumber := uint16(0)
	for parser.Scan() {
		cmd := parser.Command()

		if asm.Verbose {
			log.Printf("pass 1 %v: %v %v\n", cmd.LineNo, cmd.Kind, cmd.Text)
		}

		if cmd.Kind != CommandL {
			lineNumber++
			continue
		}

		label := cmd.Symbol()
		if asm.Symbols.Contains(label) {
			return &ErrSyntax{LineNo: cmd.LineNo, Line: cmd.Text, Err: ErrLabelDuplicate}
		}
		asm.Symbols.AddEntry(label, lineNumber)
	}

	return parser.Err()
}

// encode is the second pass: emit one word per real command in program
// order, allocating variables on first use.
func (asm *Assembler) encode(input io.Reader) (prog *Program, err error) {
	parser := NewParser(input)
	prog = &Program{}

	for parser.Scan() {
		cmd := parser.Command()

		if asm.Verbose {
			log.Printf("pass 2 %v: %v %v\n", cmd.LineNo, cmd.Kind, cmd.Text)
		}

		var code Code
		switch cmd.Kind {
		case CommandL:
			continue
		case CommandA:
			code, err = asm.encodeAddress(cmd.Symbol())
		case CommandC:
			code, err = asm.encodeComputation(cmd)
		}
		if err != nil {
			return nil, &ErrSyntax{LineNo: cmd.LineNo, Line: cmd.Text, Err: err}
		}

		if asm.Verbose {
			log.Printf("pass 2 %v: emit %v\n", cmd.LineNo, code)
		}

		prog.Codes = append(prog.Codes, code)
	}

	err = parser.Err()
	if err != nil {
		prog = nil
	}
	return
}

// encodeAddress resolves an A-command target to a word. A target that is
// neither numeric, nor an expression, nor already bound is a fresh variable.
func (asm *Assembler) encodeAddress(target string) (code Code, err error) {
	var address uint16

	switch {
	case numericRe.MatchString(target):
		var value uint64
		value, err = strconv.ParseUint(target, 10, 15)
		if err != nil {
			err = ErrAddressRange(target)
			return
		}
		address = uint16(value)
	case strings.HasPrefix(target, "$(") && strings.HasSuffix(target, ")"):
		address, err = asm.evalExpression(target[2 : len(target)-1])
		if err != nil {
			return
		}
	case asm.Symbols.Contains(target):
		address, err = asm.Symbols.GetAddress(target)
		if err != nil {
			return
		}
	default:
		address = asm.variable
		asm.Symbols.AddEntry(target, address)
		asm.variable++
	}

	return MakeCodeA(address)
}

// encodeComputation encodes a C-command from its three fields.
func (asm *Assembler) encodeComputation(cmd Command) (code Code, err error) {
	dest, err := Dest(cmd.Dest())
	if err != nil {
		return
	}
	comp, err := Comp(cmd.Comp())
	if err != nil {
		return
	}
	jump, err := Jump(cmd.Jump())
	if err != nil {
		return
	}

	code = MakeCodeC(dest, comp, jump)
	return
}

// evalExpression does assembly-time $(...) evaluations, with every current
// symbol binding predeclared as an integer.
func (asm *Assembler) evalExpression(expr string) (address uint16, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for symbol, addr := range asm.Symbols.Entries() {
		pred[symbol] = starlark.MakeInt(int(addr))
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	rcInt, ok := rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok := rcInt.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	if value < 0 || value > int64(ADDRESS_MAX) {
		err = ErrAddressRange(strconv.FormatInt(value, 10))
		return
	}

	address = uint16(value)
	return
}
