package instructions

import (
	"fmt"
	"strings"

	"github.com/Manu343726/xtensa/pkg/utils"
)

// Stores a partially decoded instruction
//
// Raw instructions are generated as a middle step in the instruction decoding process, when
// the instruction opcode has been identified (So we already have access to the instruction descriptor)
// but the operand fields have not been transformed into operand values yet
type RawInstruction struct {
	Descriptor *InstructionDescriptor
	Fields     []uint64
}

// Draws the bit layout of the instruction with the values of its opcode and operand bits
func (instr RawInstruction) PrettyPrint(leftpad int) (string, error) {
	fields := instr.Descriptor.layout(func(op *OperandDescriptor, field int) string {
		view := utils.CreateBitView(&instr.Fields[op.Index])
		shift := 0

		for _, previous := range op.Fields[:field] {
			shift += previous.Width
		}

		width := op.Fields[field].Width
		return utils.FormatUintBinary(view.Read(shift, width), width)
	})

	return utils.BitLayout(fields, instr.Descriptor.InstructionBits(), leftpad)
}

func (instr *RawInstruction) String() string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("%v ", instr.Descriptor.OpCode.Mnemonic))

	for i, operand := range instr.Descriptor.Operands {
		builder.WriteString(utils.FormatUintHex(instr.Fields[i], (operand.FieldBits()+3)/4))

		if i < len(instr.Fields)-1 {
			builder.WriteString(", ")
		}
	}

	return builder.String()
}

// Returns the instruction word with the opcode and all operand fields
func (instr *RawInstruction) Encode() (uint64, error) {
	return Instructions.Compose(instr.Descriptor.OpCode.OpCode, instr.Fields)
}
