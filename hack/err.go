package hack

import (
	"errors"

	"github.com/brucesdad13/nand2tetris-assembler/translate"
)

var f = translate.From

var (
	// Encoder errors
	ErrDestInvalid = errors.New(f("dest mnemonic invalid"))
	ErrCompInvalid = errors.New(f("comp mnemonic invalid"))
	ErrJumpInvalid = errors.New(f("jump mnemonic invalid"))

	// Pass controller errors
	ErrLabelDuplicate = errors.New(f("label duplicated"))
)

type ErrSymbolMissing string

func (err ErrSymbolMissing) Error() string {
	return f("symbol %v missing", string(err))
}

type ErrAddressRange string

func (err ErrAddressRange) Error() string {
	return f("address %v exceeds 15 bits", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
