package mc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/operands"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
)

// Identifies which instruction field a fixup patches
type FixupKind uint

const (
	// 18 bit word offset of CALLn
	FixupKind_Call18 FixupKind = iota
	// 18 bit offset of J
	FixupKind_Jump18
	// 8 bit branch offset
	FixupKind_Branch8
	// 12 bit branch offset of BEQZ, BNEZ, BLTZ and BGEZ
	FixupKind_Branch12
	// 16 bit literal offset of L32R
	FixupKind_L32R16
	// Plain 4 byte data word
	FixupKind_Data4

	// Number of fixup kinds
	TOTAL_FIXUP_KINDS
)

var fixupKindNames = map[FixupKind]string{
	FixupKind_Call18:   "call_18",
	FixupKind_Jump18:   "jump_18",
	FixupKind_Branch8:  "branch_8",
	FixupKind_Branch12: "branch_12",
	FixupKind_L32R16:   "l32r_16",
	FixupKind_Data4:    "data_4",
}

func (k FixupKind) String() string {
	if name, ok := fixupKindNames[k]; ok {
		return name
	}

	panic("unreachable")
}

func (k FixupKind) MarshalYAML() (any, error) {
	return k.String(), nil
}

var ErrUnknownFixupKind = errors.New("unknown fixup kind")

// Returns the fixup kind with the given name
func ParseFixupKind(name string) (FixupKind, error) {
	wanted := strings.ToLower(strings.TrimSpace(name))

	for kind, kindName := range fixupKindNames {
		if kindName == wanted {
			return kind, nil
		}
	}

	return 0, fmt.Errorf("%w: '%v'", ErrUnknownFixupKind, name)
}

// Returns the fixup kind patching operands of the given encoding
func FixupKindFor(e operands.Encoding) (FixupKind, error) {
	switch e {
	case operands.Encoding_CallTarget:
		return FixupKind_Call18, nil
	case operands.Encoding_JumpTarget:
		return FixupKind_Jump18, nil
	case operands.Encoding_BranchTarget8:
		return FixupKind_Branch8, nil
	case operands.Encoding_BranchTarget12:
		return FixupKind_Branch12, nil
	case operands.Encoding_L32RTarget:
		return FixupKind_L32R16, nil
	}

	return 0, fmt.Errorf("%w: %v operands cannot be patched by a fixup", types.ErrOperandShape, e)
}

// Value that could not be resolved at encode time. The bytes at Offset hold
// a zero placeholder until the fixup is applied
type Fixup struct {
	// Referenced symbol
	Expr instructions.SymbolRef
	// Offset in bytes of the patched instruction or data word
	Offset uint64
	Kind   FixupKind
	// Where the reference comes from
	Loc types.SourceLocation
}

func (f Fixup) String() string {
	return fmt.Sprintf("%v @ %#x (%v) %v", f.Kind, f.Offset, f.Expr, f.Loc)
}

func (f Fixup) MarshalYAML() (any, error) {
	return struct {
		Expr   string               `yaml:"expr"`
		Offset uint64               `yaml:"offset"`
		Kind   FixupKind            `yaml:"kind"`
		Loc    types.SourceLocation `yaml:"loc,omitempty"`
	}{
		Expr:   f.Expr.String(),
		Offset: f.Offset,
		Kind:   f.Kind,
		Loc:    f.Loc,
	}, nil
}

// Builds the fixup of a 4 byte data word referencing a symbol
func DataFixup(expr instructions.SymbolRef, offset uint64, loc types.SourceLocation) Fixup {
	return Fixup{
		Expr:   expr,
		Offset: offset,
		Kind:   FixupKind_Data4,
		Loc:    loc,
	}
}
