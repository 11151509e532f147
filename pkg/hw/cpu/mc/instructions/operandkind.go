package instructions

// Represents the kind of value an operand slot holds
type OperandKind uint

const (
	OperandKind_Immediate OperandKind = iota
	OperandKind_Register
	// Unresolved reference to a symbol, resolved later through a fixup
	OperandKind_Symbolic
)

func (o OperandKind) String() string {
	switch o {
	case OperandKind_Immediate:
		return "Immediate"
	case OperandKind_Register:
		return "Register"
	case OperandKind_Symbolic:
		return "Symbolic"
	}

	panic("unreachable")
}
