package llvm

import (
	"errors"
	"fmt"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
	"github.com/Manu343726/xtensa/pkg/utils"
)

// ELF relocation type of the Xtensa psABI. debug/elf has no constants for
// them, only elf.EM_XTENSA for the machine
type RelocationType uint32

const (
	R_XTENSA_NONE RelocationType = 0
	// Absolute 32 bit address
	R_XTENSA_32 RelocationType = 1
	// Operand of the first (and in non FLIX code, only) instruction slot. The
	// linker finds out which field to patch from the instruction itself
	R_XTENSA_SLOT0_OP RelocationType = 20
	// Offset of a thread local variable from the thread pointer
	R_XTENSA_TLS_TPOFF RelocationType = 53
)

var relocationTypeNames = map[RelocationType]string{
	R_XTENSA_NONE:      "R_XTENSA_NONE",
	R_XTENSA_32:        "R_XTENSA_32",
	R_XTENSA_SLOT0_OP:  "R_XTENSA_SLOT0_OP",
	R_XTENSA_TLS_TPOFF: "R_XTENSA_TLS_TPOFF",
}

func (r RelocationType) String() string {
	if name, ok := relocationTypeNames[r]; ok {
		return name
	}

	return fmt.Sprintf("R_XTENSA_%d", uint32(r))
}

func (r RelocationType) MarshalYAML() (any, error) {
	return r.String(), nil
}

var ErrUnsupportedFixup = fmt.Errorf("%w: fixup has no relocation", types.ErrInvariantViolation)

// Selects the relocation emitted for a fixup of the given kind referencing a
// symbol with the given access variant
func SelectRelocation(kind mc.FixupKind, variant instructions.SymbolVariant) (RelocationType, error) {
	switch kind {
	case mc.FixupKind_Data4:
		if variant == instructions.SymbolVariant_TPOFF {
			return R_XTENSA_TLS_TPOFF, nil
		}

		return R_XTENSA_32, nil
	case mc.FixupKind_Call18, mc.FixupKind_Jump18, mc.FixupKind_Branch8, mc.FixupKind_Branch12, mc.FixupKind_L32R16:
		return R_XTENSA_SLOT0_OP, nil
	}

	return R_XTENSA_NONE, utils.MakeError(ErrUnsupportedFixup, "fixup kind %d", uint(kind))
}

// Reports whether a relocation against the symbol must keep the symbol in
// the object instead of being rewritten against its section. Xtensa never
// needs to
func NeedsRelocateWithSymbol(symbol string, relocation RelocationType) bool {
	return false
}

// Relocation entry of an object file
type Relocation struct {
	// Offset in the section the relocation patches
	Offset uint64         `yaml:"offset"`
	Type   RelocationType `yaml:"type"`
	Symbol string         `yaml:"symbol,omitempty"`
	Addend int64          `yaml:"addend,omitempty"`
}

func (r Relocation) String() string {
	target := r.Symbol

	if r.Addend != 0 {
		target = fmt.Sprintf("%v%+d", target, r.Addend)
	}

	return fmt.Sprintf("%08x %v %v", r.Offset, r.Type, target)
}

var ErrRelocation = errors.New("cannot relocate fixup")

// Translates the fixups of a section into relocations
func Relocations(fixups []mc.Fixup) ([]Relocation, error) {
	relocations := make([]Relocation, 0, len(fixups))

	for _, fixup := range fixups {
		relocation, err := SelectRelocation(fixup.Kind, fixup.Expr.Variant)

		if err != nil {
			return nil, fmt.Errorf("%w at %#x (%v): %w", ErrRelocation, fixup.Offset, fixup.Expr, err)
		}

		relocations = append(relocations, Relocation{
			Offset: fixup.Offset,
			Type:   relocation,
			Symbol: fixup.Expr.Symbol,
			Addend: fixup.Expr.Addend,
		})
	}

	return relocations, nil
}
