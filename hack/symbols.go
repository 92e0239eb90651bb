package hack

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

const (
	SCREEN_BASE   = uint16(16384) // Memory-mapped screen
	KBD_BASE      = uint16(24576) // Memory-mapped keyboard
	VARIABLE_BASE = uint16(16)    // First address allocated to a variable
)

// SymbolTable maps symbolic names to instruction or data addresses.
type SymbolTable struct {
	table map[string]uint16
}

// NewSymbolTable creates a table seeded with the predefined Hack symbols:
// the virtual machine pointers, the sixteen general-purpose registers, and
// the memory-mapped devices.
func NewSymbolTable() (st *SymbolTable) {
	st = &SymbolTable{
		table: map[string]uint16{
			"SP":     0,
			"LCL":    1,
			"ARG":    2,
			"THIS":   3,
			"THAT":   4,
			"SCREEN": SCREEN_BASE,
			"KBD":    KBD_BASE,
		},
	}

	for n := range uint16(16) {
		st.table[fmt.Sprintf("R%d", n)] = n
	}

	return
}

// AddEntry binds a symbol to an address, overwriting any existing binding.
// Callers that require no-duplicate semantics must check Contains first.
func (st *SymbolTable) AddEntry(symbol string, address uint16) {
	st.table[symbol] = address
}

// Contains reports whether the symbol is bound.
func (st *SymbolTable) Contains(symbol string) bool {
	_, ok := st.table[symbol]
	return ok
}

// GetAddress returns the address bound to the symbol.
func (st *SymbolTable) GetAddress(symbol string) (address uint16, err error) {
	address, ok := st.table[symbol]
	if !ok {
		err = ErrSymbolMissing(symbol)
	}
	return
}

// Entries iterates all bindings in ascending address order, ties broken by
// name. For diagnostics only; the ordering is not part of the output format.
func (st *SymbolTable) Entries() iter.Seq2[string, uint16] {
	type entry struct {
		symbol  string
		address uint16
	}

	entries := make([]entry, 0, len(st.table))
	for symbol, address := range st.table {
		entries = append(entries, entry{symbol, address})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return cmp.Or(cmp.Compare(a.address, b.address), cmp.Compare(a.symbol, b.symbol))
	})

	return func(yield func(symbol string, address uint16) bool) {
		for _, e := range entries {
			if !yield(e.symbol, e.address) {
				return
			}
		}
	}
}
