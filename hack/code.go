package hack

import (
	"fmt"
	"strconv"
)

// Code is a single 16-bit Hack machine word.
type Code uint16

// ADDRESS_MAX is the largest operand an A-instruction can carry.
const ADDRESS_MAX = uint16(1<<15 - 1)

// String renders the word in the .hack wire format: 16 characters of 0/1.
func (code Code) String() string {
	return fmt.Sprintf("%016b", uint16(code))
}

// IsA reports whether the word is an A-instruction.
func (code Code) IsA() bool {
	return code&(1<<15) == 0
}

// CodeDest is a 3-bit destination field, bit order A,D,M.
type CodeDest uint16

const (
	DEST_NULL = CodeDest(0b000) // store nowhere
	DEST_M    = CodeDest(0b001) // M
	DEST_D    = CodeDest(0b010) // D
	DEST_MD   = CodeDest(0b011) // MD
	DEST_A    = CodeDest(0b100) // A
	DEST_AM   = CodeDest(0b101) // AM
	DEST_AD   = CodeDest(0b110) // AD
	DEST_AMD  = CodeDest(0b111) // AMD
)

var destMap = map[string]CodeDest{
	"M":   DEST_M,
	"D":   DEST_D,
	"MD":  DEST_MD,
	"A":   DEST_A,
	"AM":  DEST_AM,
	"AD":  DEST_AD,
	"AMD": DEST_AMD,
}

// CodeJump is a 3-bit jump condition field.
type CodeJump uint16

const (
	JUMP_NULL = CodeJump(0b000) // no jump
	JUMP_JGT  = CodeJump(0b001) // JGT
	JUMP_JEQ  = CodeJump(0b010) // JEQ
	JUMP_JGE  = CodeJump(0b011) // JGE
	JUMP_JLT  = CodeJump(0b100) // JLT
	JUMP_JNE  = CodeJump(0b101) // JNE
	JUMP_JLE  = CodeJump(0b110) // JLE
	JUMP_JMP  = CodeJump(0b111) // JMP
)

var jumpMap = map[string]CodeJump{
	"JGT": JUMP_JGT,
	"JEQ": JUMP_JEQ,
	"JGE": JUMP_JGE,
	"JLT": JUMP_JLT,
	"JNE": JUMP_JNE,
	"JLE": JUMP_JLE,
	"JMP": JUMP_JMP,
}

// CodeComp is a 7-bit ALU control field. The leading bit selects the M
// register in place of A as the second operand.
type CodeComp uint16

// COMP_M_BIT selects the M operand; every M-form mnemonic encodes as its
// A-form counterpart with this bit set.
const COMP_M_BIT = CodeComp(1 << 6)

const (
	COMP_ZERO        = CodeComp(0b0101010) // 0
	COMP_ONE         = CodeComp(0b0111111) // 1
	COMP_NEG_ONE     = CodeComp(0b0111010) // -1
	COMP_D           = CodeComp(0b0001100) // D
	COMP_A           = CodeComp(0b0110000) // A
	COMP_NOT_D       = CodeComp(0b0001101) // !D
	COMP_NOT_A       = CodeComp(0b0110001) // !A
	COMP_NEG_D       = CodeComp(0b0001111) // -D
	COMP_NEG_A       = CodeComp(0b0110011) // -A
	COMP_D_PLUS_ONE  = CodeComp(0b0011111) // D+1
	COMP_A_PLUS_ONE  = CodeComp(0b0110111) // A+1
	COMP_D_MINUS_ONE = CodeComp(0b0001110) // D-1
	COMP_A_MINUS_ONE = CodeComp(0b0110010) // A-1
	COMP_D_PLUS_A    = CodeComp(0b0000010) // D+A
	COMP_D_MINUS_A   = CodeComp(0b0010011) // D-A
	COMP_A_MINUS_D   = CodeComp(0b0000111) // A-D
	COMP_D_AND_A     = CodeComp(0b0000000) // D&A
	COMP_D_OR_A      = CodeComp(0b0010101) // D|A

	COMP_M           = COMP_A | COMP_M_BIT           // M
	COMP_NOT_M       = COMP_NOT_A | COMP_M_BIT       // !M
	COMP_NEG_M       = COMP_NEG_A | COMP_M_BIT       // -M
	COMP_M_PLUS_ONE  = COMP_A_PLUS_ONE | COMP_M_BIT  // M+1
	COMP_M_MINUS_ONE = COMP_A_MINUS_ONE | COMP_M_BIT // M-1
	COMP_D_PLUS_M    = COMP_D_PLUS_A | COMP_M_BIT    // D+M
	COMP_D_MINUS_M   = COMP_D_MINUS_A | COMP_M_BIT   // D-M
	COMP_M_MINUS_D   = COMP_A_MINUS_D | COMP_M_BIT   // M-D
	COMP_D_AND_M     = COMP_D_AND_A | COMP_M_BIT     // D&M
	COMP_D_OR_M      = COMP_D_OR_A | COMP_M_BIT      // D|M
)

var compMap = map[string]CodeComp{
	"0":   COMP_ZERO,
	"1":   COMP_ONE,
	"-1":  COMP_NEG_ONE,
	"D":   COMP_D,
	"A":   COMP_A,
	"!D":  COMP_NOT_D,
	"!A":  COMP_NOT_A,
	"-D":  COMP_NEG_D,
	"-A":  COMP_NEG_A,
	"D+1": COMP_D_PLUS_ONE,
	"A+1": COMP_A_PLUS_ONE,
	"D-1": COMP_D_MINUS_ONE,
	"A-1": COMP_A_MINUS_ONE,
	"D+A": COMP_D_PLUS_A,
	"D-A": COMP_D_MINUS_A,
	"A-D": COMP_A_MINUS_D,
	"D&A": COMP_D_AND_A,
	"D|A": COMP_D_OR_A,
	"M":   COMP_M,
	"!M":  COMP_NOT_M,
	"-M":  COMP_NEG_M,
	"M+1": COMP_M_PLUS_ONE,
	"M-1": COMP_M_MINUS_ONE,
	"D+M": COMP_D_PLUS_M,
	"D-M": COMP_D_MINUS_M,
	"M-D": COMP_M_MINUS_D,
	"D&M": COMP_D_AND_M,
	"D|M": COMP_D_OR_M,
}

// Dest encodes a destination mnemonic. The empty mnemonic is the null
// destination; any other mnemonic must be in the dest table.
func Dest(mnemonic string) (dest CodeDest, err error) {
	if mnemonic == "" {
		return DEST_NULL, nil
	}
	dest, ok := destMap[mnemonic]
	if !ok {
		err = ErrDestInvalid
	}
	return
}

// Jump encodes a jump mnemonic. The empty mnemonic is the null jump.
func Jump(mnemonic string) (jump CodeJump, err error) {
	if mnemonic == "" {
		return JUMP_NULL, nil
	}
	jump, ok := jumpMap[mnemonic]
	if !ok {
		err = ErrJumpInvalid
	}
	return
}

// Comp encodes a computation mnemonic. Comp is mandatory; there is no null
// encoding.
func Comp(mnemonic string) (comp CodeComp, err error) {
	comp, ok := compMap[mnemonic]
	if !ok {
		err = ErrCompInvalid
	}
	return
}

// MakeCodeA builds an A-instruction word: a leading 0 opcode bit and a 15-bit
// address. Addresses beyond 15 bits are rejected, never truncated.
func MakeCodeA(address uint16) (code Code, err error) {
	if address > ADDRESS_MAX {
		err = ErrAddressRange(strconv.Itoa(int(address)))
		return
	}
	code = Code(address)
	return
}

// MakeCodeC builds a C-instruction word: the 111 opcode prefix, then the
// comp, dest, and jump fields.
func MakeCodeC(dest CodeDest, comp CodeComp, jump CodeJump) Code {
	return Code(0b111<<13 | uint16(comp)<<6 | uint16(dest)<<3 | uint16(jump))
}
