package instructions

import (
	"fmt"
	"strings"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/registers"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
	"github.com/Manu343726/xtensa/pkg/utils"
)

// Stores a fully decoded instruction. Memory operands take two consecutive
// values: the base register and the byte offset
type Instruction struct {
	Descriptor *InstructionDescriptor
	Operands   []OperandValue
	// Where the instruction comes from, reported in fixups
	Location types.SourceLocation
}

// Returns the values of an operand of the instruction
func (i *Instruction) OperandValues(operand *OperandDescriptor) []OperandValue {
	return i.Operands[operand.Slot : operand.Slot+operand.Slots()]
}

func (i *Instruction) String() string {
	var builder strings.Builder

	builder.WriteString(i.Descriptor.OpCode.Mnemonic)

	for j, operand := range i.Operands {
		if j == 0 {
			builder.WriteString(" ")
		} else {
			builder.WriteString(", ")
		}
		builder.WriteString(operand.String())
	}

	return builder.String()
}

// Creates an instruction checking the number and kind of its operand values
func NewInstruction(descriptor *InstructionDescriptor, operands []OperandValue) (*Instruction, error) {
	if len(operands) != descriptor.TotalSlots() {
		return nil, utils.MakeError(types.ErrOperandShape, "instruction %s expects %d operand values, got %d",
			descriptor.OpCode.Mnemonic, descriptor.TotalSlots(), len(operands))
	}

	instruction := &Instruction{
		Descriptor: descriptor,
		Operands:   operands,
	}

	for _, op := range descriptor.Operands {
		values := instruction.OperandValues(op)

		switch {
		case op.IsRegister():
			if !values[0].IsRegister() {
				return nil, utils.MakeError(types.ErrOperandShape, "operand %d of %s: expected register, got %s",
					op.Index, descriptor.OpCode.Mnemonic, values[0].Kind())
			}
		case op.IsMemory():
			if !values[0].IsRegister() || !values[1].IsImmediate() {
				return nil, utils.MakeError(types.ErrOperandShape, "operand %d of %s: expected base register and offset, got %s and %s",
					op.Index, descriptor.OpCode.Mnemonic, values[0].Kind(), values[1].Kind())
			}
		case values[0].IsSymbolic():
			if !op.AcceptsSymbol() {
				return nil, utils.MakeError(types.ErrOperandShape, "operand %d of %s does not accept symbols, got '%v'",
					op.Index, descriptor.OpCode.Mnemonic, values[0])
			}
		case !values[0].IsImmediate():
			return nil, utils.MakeError(types.ErrOperandShape, "operand %d of %s: expected immediate, got %s",
				op.Index, descriptor.OpCode.Mnemonic, values[0].Kind())
		}
	}

	return instruction, nil
}

// Creates an instruction given its opcode. Panics if the operands do not fit the opcode
func MustInstruction(op OpCode, operands ...OperandValue) *Instruction {
	descriptor, err := Instructions.Instruction(op)

	if err != nil {
		panic(err)
	}

	instruction, err := NewInstruction(descriptor, operands)

	if err != nil {
		panic(fmt.Errorf("invalid %v instruction: %w", op, err))
	}

	return instruction
}

// Parses an assembly line such as "l32i a2, a1, 8" or "call8 printf"
func ParseInstruction(text string) (*Instruction, error) {
	text = strings.TrimSpace(text)
	mnemonic, rest, _ := strings.Cut(strings.ReplaceAll(text, "\t", " "), " ")

	op, err := Opcodes.ParseOpCode(mnemonic)

	if err != nil {
		return nil, err
	}

	descriptor, err := Instructions.Instruction(op)

	if err != nil {
		return nil, err
	}

	args := []string{}

	if strings.TrimSpace(rest) != "" {
		args = utils.Map(strings.Split(rest, ","), strings.TrimSpace)
	}

	if len(args) != descriptor.TotalSlots() {
		return nil, utils.MakeError(types.ErrOperandShape, "'%v': %v expects %v operands, got %v", text, descriptor.OpCode.Mnemonic, descriptor.TotalSlots(), len(args))
	}

	values := make([]OperandValue, 0, len(args))

	for _, op := range descriptor.Operands {
		if op.IsMemory() {
			base, err := registers.RegisterClasses.RegisterByName(args[op.Slot])

			if err != nil {
				return nil, err
			}

			offset, err := ParseImmediate(args[op.Slot+1])

			if err != nil {
				return nil, err
			}

			values = append(values, RegisterOperandValue(base), offset)
			continue
		}

		value, err := op.ParseValue(args[op.Slot])

		if err != nil {
			return nil, err
		}

		values = append(values, value)
	}

	return NewInstruction(descriptor, values)
}
