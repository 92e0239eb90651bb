// Package hack implements a two-pass assembler for the Hack machine language.
//
// The Hack computer is a 16-bit machine with an address register (A), a data
// register (D), a RAM-backed M operand, and memory-mapped screen and keyboard.
// Programs consist of A-instructions (@value), C-instructions (dest=comp;jump),
// and label pseudo-instructions ((NAME)).
//
// The first pass binds every label to the address of the next real
// instruction. The second pass encodes instructions to 16-bit words,
// allocating variables to consecutive RAM addresses on first use.
package hack
