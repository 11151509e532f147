package instructions

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/registers"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
	"github.com/Manu343726/xtensa/pkg/utils"
)

// Constains information about all implemented instructions. Implements the
// opcode bit pattern matcher and composer used by the codec
type InstructionsDescriptor struct {
	instructions map[OpCode]*InstructionDescriptor
	// Instructions of each size, most fixed bits first
	bySize map[int][]*InstructionDescriptor
}

// Returns all implemented instructions sorted by opcode
func (d *InstructionsDescriptor) AllInstructions() []*InstructionDescriptor {
	result := utils.Values(d.instructions)
	sort.Slice(result, func(i, j int) bool { return result[i].OpCode.OpCode < result[j].OpCode.OpCode })
	return result
}

var ErrInstructionNotImplemented = errors.New("instruction not implemented")

// Returns the instruction corresponding to the given opcode
func (d *InstructionsDescriptor) Instruction(op OpCode) (*InstructionDescriptor, error) {
	if instruction, hasInstruction := d.instructions[op]; hasInstruction {
		return instruction, nil
	} else {
		return nil, utils.MakeError(ErrInstructionNotImplemented, "no instruction implemented for opcode '%v'", op)
	}
}

// Returns the instruction sizes in bytes the table has encodings for
func (d *InstructionsDescriptor) Sizes() []int {
	sizes := utils.Keys(d.bySize)
	sort.Ints(sizes)
	return sizes
}

// Finds the instruction of the given size matching an instruction word and extracts its raw operand fields
func (d *InstructionsDescriptor) Match(word uint64, size int) (OpCode, []uint64, error) {
	for _, instruction := range d.bySize[size] {
		if instruction.OpCode.Matches(word) {
			fields := utils.Map(instruction.Operands, func(op *OperandDescriptor) uint64 {
				return op.Extract(word)
			})

			return instruction.OpCode.OpCode, fields, nil
		}
	}

	return 0, nil, utils.MakeError(types.ErrNoMatch, "%v byte word %v", size, utils.FormatUintHex(word, size*2))
}

// Builds the instruction word of an opcode given the raw fields of its operands
func (d *InstructionsDescriptor) Compose(op OpCode, fields []uint64) (uint64, error) {
	instruction, err := d.Instruction(op)

	if err != nil {
		return 0, err
	}

	if len(fields) != len(instruction.Operands) {
		return 0, utils.MakeError(types.ErrOperandShape, "%v has %v operand fields, got %v", op, len(instruction.Operands), len(fields))
	}

	word := instruction.OpCode.Match

	for i, operand := range instruction.Operands {
		if err := operand.Insert(&word, fields[i]); err != nil {
			return 0, fmt.Errorf("%v operand [%v]: %w", op, i, err)
		}
	}

	return word, nil
}

func operandFieldBits(op *OperandDescriptor) int {
	if op.IsRegister() {
		return registers.RegisterClasses.Class(op.Class).EncodingBits
	}

	return op.Encoding.FieldBits()
}

func fixInstructionOperands(instr *InstructionDescriptor) {
	used := instr.OpCode.Mask
	top := utils.AllOnes[uint64](instr.InstructionBits())
	slot := 0

	if instr.OpCode.Match&^instr.OpCode.Mask != 0 {
		panic(fmt.Errorf("instruction %v has match bits outside its mask", instr.OpCode))
	}

	if instr.OpCode.Mask&^top != 0 {
		panic(fmt.Errorf("instruction %v has mask bits beyond its size", instr.OpCode))
	}

	for i, operand := range instr.Operands {
		operand.Index = i
		operand.Slot = slot
		slot += operand.Slots()

		if operand.FieldBits() != operandFieldBits(operand) {
			panic(fmt.Errorf("operand [%v] %v of instruction %v has %v field bits, expected %v", i, operand, instr.OpCode, operand.FieldBits(), operandFieldBits(operand)))
		}

		for _, field := range operand.Fields {
			bits := utils.AllOnes[uint64](field.Width) << field.Position

			if field.Width <= 0 || bits&^top != 0 {
				panic(fmt.Errorf("operand [%v] %v of instruction %v has invalid field %v", i, operand, instr.OpCode, field))
			}

			if bits&used != 0 {
				panic(fmt.Errorf("operand [%v] %v of instruction %v has field %v overlapping the opcode or another operand", i, operand, instr.OpCode, field))
			}

			used |= bits
		}
	}
}

// Initializes an instructions descriptor with all the given instructions
func NewInstructionsDescriptor(instructions []*InstructionDescriptor) InstructionsDescriptor {
	for _, instr := range instructions {
		fixInstructionOperands(instr)
	}

	d := InstructionsDescriptor{
		instructions: utils.GenMap(instructions, func(i *InstructionDescriptor) OpCode { return i.OpCode.OpCode }),
		bySize:       make(map[int][]*InstructionDescriptor),
	}

	if len(d.instructions) != len(instructions) {
		panic("duplicated opcode in instructions table")
	}

	for _, instr := range d.AllInstructions() {
		d.bySize[instr.Size()] = append(d.bySize[instr.Size()], instr)
	}

	for size, group := range d.bySize {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].OpCode.FixedBits() > group[j].OpCode.FixedBits()
		})

		for i, a := range group {
			for _, b := range group[i+1:] {
				if a.OpCode.Mask == b.OpCode.Mask && a.OpCode.Match == b.OpCode.Match {
					panic(fmt.Errorf("instructions %v and %v of size %v have the same encoding", a.OpCode, b.OpCode, size))
				}
			}
		}
	}

	return d
}
