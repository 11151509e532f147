package instructions

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
	"github.com/Manu343726/xtensa/pkg/utils"
)

// Contains information describing an instruction
type InstructionDescriptor struct {
	// Instruction opcode and its fixed encoding bits
	OpCode *OpCodeDescriptor
	// Instruction operands, in assembly order
	Operands []*OperandDescriptor
	// Instruction description (for documentation and debugging)
	Description string
	// Core options the instruction is only available with
	Features types.FeatureSet
}

// Returns a human readable string representation of the instruction
func (d *InstructionDescriptor) String() string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("%v", d.OpCode.Mnemonic))

	for i := range d.Operands {
		operand := d.Operands[i]

		builder.WriteString(" ")
		builder.WriteString(operand.String())
	}

	return builder.String()
}

// Size of the instruction in bytes
func (d *InstructionDescriptor) Size() int {
	return d.OpCode.Size
}

// Returns the bits used to encode the instruction
func (d *InstructionDescriptor) InstructionBits() int {
	return d.OpCode.EncodingBits()
}

// Number of operand values an instruction of this kind carries
func (d *InstructionDescriptor) TotalSlots() int {
	return utils.Accumulate(d.Operands, func(op *OperandDescriptor) int { return op.Slots() })
}

// Returns the operand that accepts symbolic values, if any
func (d *InstructionDescriptor) SymbolicOperand() *OperandDescriptor {
	for _, operand := range d.Operands {
		if operand.AcceptsSymbol() {
			return operand
		}
	}

	return nil
}

// Returns the fixed opcode bits and the operand fields as layout fields, sorted by position
func (d *InstructionDescriptor) layout(operandName func(op *OperandDescriptor, field int) string) []utils.LayoutField {
	fields := []utils.LayoutField{}
	covered := uint64(0)

	for _, op := range d.Operands {
		for i, field := range op.Fields {
			fields = append(fields, utils.LayoutField{
				Name:     operandName(op, i),
				Position: field.Position,
				Width:    field.Width,
			})
			covered |= utils.AllOnes[uint64](field.Width) << field.Position
		}
	}

	// Fixed bits are grouped into runs of contiguous bits not used by operands
	for bit := 0; bit < d.InstructionBits(); {
		if covered&(1<<bit) != 0 {
			bit++
			continue
		}

		begin := bit
		for bit < d.InstructionBits() && covered&(1<<bit) == 0 {
			bit++
		}

		width := bit - begin
		match := utils.CreateBitView(&d.OpCode.Match).Read(begin, width)
		fields = append(fields, utils.LayoutField{
			Name:     utils.FormatUintBinary(match, width),
			Position: begin,
			Width:    width,
		})
	}

	sort.Slice(fields, func(i, j int) bool { return fields[i].Position < fields[j].Position })
	return fields
}

// Returns full documentation for the instruction
func (d *InstructionDescriptor) Documentation(leftpad int) (string, error) {
	var builder strings.Builder
	leftpad_str := strings.Repeat(" ", leftpad)

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("%v\n\n", d))

	leftpad_str += "  "
	leftpad += 2

	builder.WriteString(leftpad_str)
	builder.WriteString("Description:\n\n  ")
	builder.WriteString(leftpad_str)
	builder.WriteString(d.Description)
	builder.WriteString("\n\n")

	if d.Features != 0 {
		builder.WriteString(leftpad_str)
		builder.WriteString(fmt.Sprintf("Requires: %v\n\n", d.Features))
	}

	builder.WriteString(leftpad_str)
	builder.WriteString("Memory layout:\n\n")

	fields := d.layout(func(op *OperandDescriptor, field int) string {
		if len(op.Fields) > 1 {
			return fmt.Sprintf("[%v.%v]", op.Index, field)
		}

		return fmt.Sprintf("[%v]", op.Index)
	})

	diagram, err := utils.BitLayout(fields, d.InstructionBits(), leftpad+2)
	if err != nil {
		return "", fmt.Errorf("error generating documentation for instruction %s: %w", d.OpCode.Mnemonic, err)
	}

	builder.WriteString(diagram)
	builder.WriteString("\n")
	builder.WriteString(leftpad_str)
	builder.WriteString("Operands:\n\n")

	if len(d.Operands) > 0 {
		for i, operand := range d.Operands {
			builder.WriteString(leftpad_str)
			builder.WriteString(fmt.Sprintf(" [%v] %v: %v\n", i, operand, operand.Description))
		}
	} else {
		builder.WriteString(leftpad_str)
		builder.WriteString("  (none)\n")
	}

	return builder.String(), nil
}
