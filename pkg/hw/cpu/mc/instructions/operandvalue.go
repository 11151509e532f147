package instructions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/registers"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
	"github.com/Manu343726/xtensa/pkg/utils"
)

// Access variant attached to a symbol reference
type SymbolVariant uint

const (
	SymbolVariant_None SymbolVariant = iota
	// Offset of a thread local variable from the thread pointer
	SymbolVariant_TPOFF
)

func (v SymbolVariant) String() string {
	switch v {
	case SymbolVariant_None:
		return ""
	case SymbolVariant_TPOFF:
		return "tpoff"
	}

	panic("unreachable")
}

// Reference to a symbol plus a constant addend, not yet resolved to an address
type SymbolRef struct {
	Symbol  string        `yaml:"symbol"`
	Addend  int64         `yaml:"addend,omitempty"`
	Variant SymbolVariant `yaml:"-"`
}

func (s SymbolRef) String() string {
	var builder strings.Builder

	builder.WriteString(s.Symbol)

	if s.Addend > 0 {
		builder.WriteString(fmt.Sprintf("+%v", s.Addend))
	} else if s.Addend < 0 {
		builder.WriteString(fmt.Sprint(s.Addend))
	}

	if s.Variant != SymbolVariant_None {
		builder.WriteString("@")
		builder.WriteString(s.Variant.String())
	}

	return builder.String()
}

// Parses "symbol", "symbol+addend", "symbol-addend" and an optional "@tpoff" suffix
func ParseSymbolRef(text string) (SymbolRef, error) {
	result := SymbolRef{}
	text = strings.TrimSpace(text)

	if before, variant, found := strings.Cut(text, "@"); found {
		switch strings.ToLower(variant) {
		case "tpoff":
			result.Variant = SymbolVariant_TPOFF
		default:
			return SymbolRef{}, utils.MakeError(types.ErrOperandShape, "unknown symbol variant '%v'", variant)
		}

		text = before
	}

	if i := strings.LastIndexAny(text, "+-"); i > 0 {
		addend, err := strconv.ParseInt(text[i:], 0, 64)
		if err != nil {
			return SymbolRef{}, utils.MakeError(types.ErrOperandShape, "invalid addend in '%v': %w", text, err)
		}

		result.Addend = addend
		text = text[:i]
	}

	if text == "" {
		return SymbolRef{}, utils.MakeError(types.ErrOperandShape, "empty symbol name")
	}

	result.Symbol = text
	return result, nil
}

// Stores the value of an instruction operand. Exactly one of register, immediate
// or symbol is meaningful, selected by the kind
type OperandValue struct {
	kind      OperandKind
	register  registers.Register
	immediate int64
	symbol    SymbolRef
}

// Returns the kind of operand this value refers to
func (v OperandValue) Kind() OperandKind {
	return v.kind
}

func (v OperandValue) IsRegister() bool {
	return v.kind == OperandKind_Register
}

func (v OperandValue) IsImmediate() bool {
	return v.kind == OperandKind_Immediate
}

func (v OperandValue) IsSymbolic() bool {
	return v.kind == OperandKind_Symbolic
}

// Returns the string representation of the operand value
func (v OperandValue) String() string {
	switch v.kind {
	case OperandKind_Register:
		return v.register.String()
	case OperandKind_Immediate:
		return fmt.Sprint(v.immediate)
	case OperandKind_Symbolic:
		return v.symbol.String()
	}

	panic("unreachable")
}

func (v OperandValue) Register() registers.Register {
	if v.kind == OperandKind_Register {
		return v.register
	}

	panic("operand value is not a register")
}

func (v OperandValue) Immediate() int64 {
	if v.kind == OperandKind_Immediate {
		return v.immediate
	}

	panic("operand value is not an immediate")
}

func (v OperandValue) Symbol() SymbolRef {
	if v.kind == OperandKind_Symbolic {
		return v.symbol
	}

	panic("operand value is not symbolic")
}

// Returns a register operand value
func RegisterOperandValue(register registers.Register) OperandValue {
	return OperandValue{
		kind:     OperandKind_Register,
		register: register,
	}
}

// Returns an immediate operand value
func ImmediateValue(value int64) OperandValue {
	return OperandValue{
		kind:      OperandKind_Immediate,
		immediate: value,
	}
}

// Returns a symbolic operand value
func SymbolicValue(symbol SymbolRef) OperandValue {
	return OperandValue{
		kind:   OperandKind_Symbolic,
		symbol: symbol,
	}
}

// Parses an string as an immediate operand value. Accepts any base prefix strconv understands
func ParseImmediate(value string) (OperandValue, error) {
	result, err := strconv.ParseInt(strings.TrimSpace(value), 0, 64)

	if err != nil {
		return OperandValue{}, utils.MakeError(types.ErrOperandShape, "invalid immediate '%v': %w", value, err)
	}

	return ImmediateValue(result), nil
}
