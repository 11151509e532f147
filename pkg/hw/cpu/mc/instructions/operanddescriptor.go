package instructions

import (
	"fmt"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/operands"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/registers"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
	"github.com/Manu343726/xtensa/pkg/utils"
)

// Contiguous range of bits within an instruction word
type BitField struct {
	// First bit of the range
	Position int
	// Number of bits
	Width int
}

func (f BitField) String() string {
	return fmt.Sprintf("%v:%v", f.Position+f.Width-1, f.Position)
}

// Contains information about an instruction operand
type OperandDescriptor struct {
	// Type of operand. Register operands are decoded through a register class,
	// immediate operands through an operand encoding
	Kind OperandKind
	// Role the operand takes in the instruction
	Role OperandRole
	// Register class of the operand in case the operand is a register
	Class registers.RegisterClass
	// How the raw field maps to the semantic value of an immediate or memory operand
	Encoding operands.Encoding
	// Bit ranges storing the raw field, least significant part first
	Fields []BitField
	// Operand description (for documentation and debugging)
	Description string
	// Position within the set of operands of the instruction, indexed from 0 to total operands - 1
	Index int
	// Position of the first value of this operand within the values of an instruction
	Slot int
}

// Returns true if the operand is a register operand
func (o *OperandDescriptor) IsRegister() bool {
	return o.Kind == OperandKind_Register
}

// Returns true if the operand is an immediate operand
func (o *OperandDescriptor) IsImmediate() bool {
	return o.Kind == OperandKind_Immediate
}

// Returns true if the operand is a base register plus offset pair
func (o *OperandDescriptor) IsMemory() bool {
	return o.IsImmediate() && o.Encoding.IsMemory()
}

// Returns true if a symbolic value is accepted in this operand
func (o *OperandDescriptor) AcceptsSymbol() bool {
	return o.IsImmediate() && o.Encoding.AcceptsSymbol()
}

// Number of operand values this operand takes in an instruction.
// Memory operands take two: the base register and the offset
func (o *OperandDescriptor) Slots() int {
	if o.IsMemory() {
		return 2
	}

	return 1
}

// Total bits of the raw field
func (o *OperandDescriptor) FieldBits() int {
	return utils.Accumulate(o.Fields, func(f BitField) int { return f.Width })
}

// Returns an human readable string describing the operand (See [InstructionDescriptor.Documentation])
func (o *OperandDescriptor) String() string {
	if o.IsRegister() {
		return fmt.Sprintf("%v", o.Class)
	} else {
		return fmt.Sprintf("<%v:%v>", o.Role, o.Encoding)
	}
}

// Reads the raw field of the operand from an instruction word
func (o *OperandDescriptor) Extract(word uint64) uint64 {
	view := utils.CreateBitView(&word)
	var raw uint64
	shift := 0

	for _, field := range o.Fields {
		raw |= view.Read(field.Position, field.Width) << shift
		shift += field.Width
	}

	return raw
}

// Writes the raw field of the operand into an instruction word
func (o *OperandDescriptor) Insert(word *uint64, raw uint64) error {
	if !utils.IsUInt(o.FieldBits(), raw) {
		return utils.MakeError(types.ErrOutOfRange, "raw field %#x does not fit in operand %v (%v bits)", raw, o, o.FieldBits())
	}

	view := utils.CreateBitView(word)
	shift := 0

	for _, field := range o.Fields {
		view.Write(raw>>shift, field.Position, field.Width)
		shift += field.Width
	}

	return nil
}

// Decodes the raw field of the operand into its values. The instruction address
// is needed by encodings relative to the program counter
func (o *OperandDescriptor) DecodeValues(raw uint64, address uint64) ([]OperandValue, error) {
	if o.IsRegister() {
		register, err := registers.RegisterClasses.Decode(o.Class, raw)

		if err != nil {
			return nil, err
		}

		return []OperandValue{RegisterOperandValue(register)}, nil
	}

	if o.IsMemory() {
		number, offset, err := operands.DecodeMemory(o.Encoding, raw)

		if err != nil {
			return nil, err
		}

		base, err := registers.RegisterClasses.Decode(registers.RegisterClass_AR, number)

		if err != nil {
			return nil, err
		}

		return []OperandValue{RegisterOperandValue(base), ImmediateValue(offset)}, nil
	}

	value, err := operands.DecodeImmediate(o.Encoding, raw, address)

	if err != nil {
		return nil, err
	}

	return []OperandValue{ImmediateValue(value)}, nil
}

// Encodes operand values into the raw field of the operand. Symbolic values are
// not resolved here, see [OperandDescriptor.AcceptsSymbol]
func (o *OperandDescriptor) EncodeValues(values []OperandValue) (uint64, error) {
	if len(values) != o.Slots() {
		return 0, utils.MakeError(types.ErrOperandShape, "operand %v takes %v values, got %v", o, o.Slots(), len(values))
	}

	if o.IsRegister() {
		if !values[0].IsRegister() {
			return 0, utils.MakeError(types.ErrOperandShape, "operand %v expects a register, got %v '%v'", o, values[0].Kind(), values[0])
		}

		return registers.RegisterClasses.Encode(o.Class, values[0].Register())
	}

	if o.IsMemory() {
		if !values[0].IsRegister() || !values[1].IsImmediate() {
			return 0, utils.MakeError(types.ErrOperandShape, "operand %v expects a base register and an offset, got '%v', '%v'", o, values[0], values[1])
		}

		number, err := registers.RegisterClasses.Encode(registers.RegisterClass_AR, values[0].Register())

		if err != nil {
			return 0, err
		}

		return operands.EncodeMemory(o.Encoding, number, values[1].Immediate())
	}

	if !values[0].IsImmediate() {
		return 0, utils.MakeError(types.ErrOperandShape, "operand %v expects an immediate, got %v '%v'", o, values[0].Kind(), values[0])
	}

	return operands.EncodeImmediate(o.Encoding, values[0].Immediate())
}

// Parses the text of a single operand value
func (o *OperandDescriptor) ParseValue(value string) (OperandValue, error) {
	if o.IsRegister() {
		register, err := registers.RegisterClasses.RegisterByName(value)

		if err != nil {
			return OperandValue{}, err
		}

		if !registers.RegisterClasses.Class(o.Class).Contains(register) {
			return OperandValue{}, utils.MakeError(types.ErrWrongRegisterClass, "%v does not belong to %v", register, o.Class)
		}

		return RegisterOperandValue(register), nil
	}

	if immediate, err := ParseImmediate(value); err == nil {
		return immediate, nil
	}

	symbol, err := ParseSymbolRef(value)

	if err != nil {
		return OperandValue{}, err
	}

	return SymbolicValue(symbol), nil
}

// Initializes a register operand descriptor
func RegisterOperandDescriptor(class registers.RegisterClass, opd OperandDescriptor) *OperandDescriptor {
	opd.Class = class
	opd.Kind = OperandKind_Register

	return &opd
}

// Initializes an immediate or memory operand descriptor
func ImmediateOperandDescriptor(encoding operands.Encoding, opd OperandDescriptor) *OperandDescriptor {
	opd.Encoding = encoding
	opd.Kind = OperandKind_Immediate

	return &opd
}
