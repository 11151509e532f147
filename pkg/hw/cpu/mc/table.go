package mc

import (
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/instructions"
)

// Maps instruction words to opcodes and raw operand fields and back
type OpcodeTable interface {
	// Finds the instruction of the given size in bytes matching the word.
	// Returns types.ErrNoMatch if no instruction matches
	Match(word uint64, size int) (instructions.OpCode, []uint64, error)
	// Builds the instruction word of an opcode from its raw operand fields
	Compose(op instructions.OpCode, fields []uint64) (uint64, error)
	// Returns the descriptor of an opcode
	Instruction(op instructions.OpCode) (*instructions.InstructionDescriptor, error)
}

// Returns the table of all the instructions implemented by the codec
func DefaultTable() OpcodeTable {
	return &instructions.Instructions
}
