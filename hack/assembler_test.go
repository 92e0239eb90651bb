package hack

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assemble(t *testing.T, program []string) (*Assembler, *Program, error) {
	t.Helper()
	asm := &Assembler{}
	prog, err := asm.Assemble(strings.NewReader(strings.Join(program, "\n")))
	return asm, prog, err
}

func codesOf(prog *Program) (words []string) {
	for _, code := range prog.Codes {
		words = append(words, code.String())
	}
	return
}

func TestAssemblerAdd(t *testing.T) {
	assert := assert.New(t)

	// Computes R0 = 2 + 3.
	program := []string{
		"@2",
		"D=A",
		"@3",
		"D=D+A",
		"@0",
		"M=D",
	}

	_, prog, err := assemble(t, program)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{
		"0000000000000010",
		"1110110000010000",
		"0000000000000011",
		"1110000010010000",
		"0000000000000000",
		"1110001100001000",
	}

	assert.Equal(expected, codesOf(prog))
}

func TestAssemblerLabel(t *testing.T) {
	assert := assert.New(t)

	// LOOP precedes zero real instructions, so it binds to address 0.
	program := []string{
		"(LOOP)",
		"@LOOP",
		"0;JMP",
	}

	asm, prog, err := assemble(t, program)
	assert.NoError(err)

	address, err := asm.Symbols.GetAddress("LOOP")
	assert.NoError(err)
	assert.Equal(uint16(0), address)

	expected := []string{
		"0000000000000000",
		"1110101010000111",
	}

	assert.Equal(expected, codesOf(prog))
}

func TestAssemblerLabelAddresses(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"// comments and blanks never count",
		"@R0",
		"D=M",
		"(MIDDLE)",
		"",
		"(ALIAS)",
		"@MIDDLE",
		"D;JEQ",
		"(END)",
		"@END",
		"0;JMP",
	}

	asm, prog, err := assemble(t, program)
	assert.NoError(err)

	// A label's address is the count of real instructions preceding it,
	// wherever variables end up later.
	for label, want := range map[string]uint16{
		"MIDDLE": 2,
		"ALIAS":  2,
		"END":    4,
	} {
		address, err := asm.Symbols.GetAddress(label)
		assert.NoError(err, label)
		assert.Equal(want, address, label)
	}

	assert.Equal(6, len(prog.Codes))
}

func TestAssemblerVariable(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"@x",
		"M=1",
		"@x",
		"D=M",
	}

	asm, prog, err := assemble(t, program)
	assert.NoError(err)

	address, err := asm.Symbols.GetAddress("x")
	assert.NoError(err)
	assert.Equal(uint16(16), address)

	expected := []string{
		"0000000000010000",
		"1110111111001000",
		"0000000000010000",
		"1111110000010000",
	}

	assert.Equal(expected, codesOf(prog))
}

func TestAssemblerVariableOrder(t *testing.T) {
	assert := assert.New(t)

	// Variables are allocated in first-use order from address 16; a repeat
	// reference never moves an allocated variable.
	program := []string{
		"@first",
		"@second",
		"@first",
		"@third",
		"@second",
	}

	asm, prog, err := assemble(t, program)
	assert.NoError(err)
	assert.Equal(5, len(prog.Codes))

	for symbol, want := range map[string]uint16{
		"first":  16,
		"second": 17,
		"third":  18,
	} {
		address, err := asm.Symbols.GetAddress(symbol)
		assert.NoError(err, symbol)
		assert.Equal(want, address, symbol)
	}

	assert.Equal(prog.Codes[0], prog.Codes[2])
	assert.Equal(prog.Codes[1], prog.Codes[4])
}

func TestAssemblerPredefined(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"@SCREEN",
		"@KBD",
		"@R13",
		"@SP",
	}

	_, prog, err := assemble(t, program)
	assert.NoError(err)

	expected := []string{
		"0100000000000000",
		"0110000000000000",
		"0000000000001101",
		"0000000000000000",
	}

	assert.Equal(expected, codesOf(prog))
}

func TestAssemblerExpression(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"@$(SCREEN + 32)",
		"@$(KBD)",
		"@$(R1 * 8)",
	}

	_, prog, err := assemble(t, program)
	assert.NoError(err)

	expected := []string{
		"0100000000100000",
		"0110000000000000",
		"0000000000001000",
	}

	assert.Equal(expected, codesOf(prog))
}

func TestAssemblerDuplicateLabel(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"(FOO)",
		"@1",
		"(FOO)",
		"@2",
	}

	_, prog, err := assemble(t, program)
	assert.Nil(prog)
	assert.ErrorIs(err, ErrLabelDuplicate)

	var se *ErrSyntax
	assert.True(errors.As(err, &se))
	assert.Equal(3, se.LineNo)
	assert.Equal("(FOO)", se.Line)
}

func TestAssemblerDeterminism(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"(START)",
		"@START",
		"@value",
		"D=M;JNE",
		"(END)",
		"@END",
		"0;JMP",
	}

	asm1, prog1, err := assemble(t, program)
	assert.NoError(err)
	asm2, prog2, err := assemble(t, program)
	assert.NoError(err)

	assert.Equal(prog1.Codes, prog2.Codes)
	assert.Equal(asm1.Symbols.table, asm2.Symbols.table)
}

func TestAssemblerOutputCount(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"// header comment",
		"(A1)",
		"@1",
		"",
		"(A2)",
		"D=A",
		"@sum",
		"   // indented comment",
		"M=D",
		"(A3)",
	}

	_, prog, err := assemble(t, program)
	assert.NoError(err)

	// One word per A- or C-command; labels, blanks, and comments emit none.
	assert.Equal(4, len(prog.Codes))
	for _, code := range prog.Codes {
		word := code.String()
		assert.Equal(16, len(word))
		assert.Equal("", strings.Trim(word, "01"))
	}
}

func TestAssemblerErrSyntax(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		prog string
		line int
	}){
		{"(DUP)\n(DUP)\n", 2},
		{"(R5)\n", 1},
		{"@32768\n", 1},
		{"@99999999999999999999\n", 1},
		{"D=XYZ\n", 1},
		{"Q=D\n", 1},
		{"D;JFOO\n", 1},
		{"@0\nD=A\nM=A+D\n", 3},
		{"@$(unbound)\n", 1},
		{"@$(1/0)\n", 1},
		{"@$(0 - 99)\n", 1},
		{"@$(\"text\")\n", 1},
	}

	for _, entry := range table {
		asm := &Assembler{}
		_, err := asm.Assemble(strings.NewReader(entry.prog))
		var se *ErrSyntax
		assert.NotNil(err, entry.prog)
		if err != nil {
			assert.True(errors.As(err, &se), entry.prog)
			assert.Equal(entry.line, se.LineNo, entry.prog)
		}
	}
}

func TestAssemblerMnemonicErrors(t *testing.T) {
	assert := assert.New(t)

	table := map[string]error{
		"XY=D\n":  ErrDestInvalid,
		"D=QQ\n":  ErrCompInvalid,
		"D;JXX\n": ErrJumpInvalid,
	}

	for prog, want := range table {
		asm := &Assembler{}
		_, err := asm.Assemble(strings.NewReader(prog))
		assert.ErrorIs(err, want, prog)
	}
}
