package mc

import (
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/instructions"
)

// Replaces decoded PC-relative operands by symbol references.
//
// value is the absolute target address, address the address of the
// instruction, and offset/width the bytes of the instruction holding the
// operand. Returning false keeps the raw signed offset as an immediate
type Symbolizer interface {
	Symbolize(value int64, isBranch bool, address uint64, offset uint64, width uint64) (instructions.SymbolRef, bool)
}

// Adapts a function to the Symbolizer interface
type SymbolizerFunc func(value int64, isBranch bool, address uint64, offset uint64, width uint64) (instructions.SymbolRef, bool)

func (f SymbolizerFunc) Symbolize(value int64, isBranch bool, address uint64, offset uint64, width uint64) (instructions.SymbolRef, bool) {
	return f(value, isBranch, address, offset, width)
}

// Symbolizer resolving targets through an address to name table. Targets
// past a symbol are referenced with an addend when Nearest is set
type SymbolTable struct {
	Symbols map[uint64]string
	Nearest bool
}

func (t *SymbolTable) Symbolize(value int64, isBranch bool, address uint64, offset uint64, width uint64) (instructions.SymbolRef, bool) {
	target := uint64(value)

	if name, ok := t.Symbols[target]; ok {
		return instructions.SymbolRef{Symbol: name}, true
	}

	if !t.Nearest {
		return instructions.SymbolRef{}, false
	}

	var (
		best  string
		start uint64
		found bool
	)

	for symbolAddress, name := range t.Symbols {
		if symbolAddress > target {
			continue
		}

		if !found || symbolAddress > start || (symbolAddress == start && name < best) {
			best, start, found = name, symbolAddress, true
		}
	}

	if !found {
		return instructions.SymbolRef{}, false
	}

	return instructions.SymbolRef{Symbol: best, Addend: int64(target - start)}, true
}
