// Package mc implements the Xtensa machine code layer: decoding byte streams
// into instructions, encoding instructions into bytes plus fixups, and the
// descriptors of everything the codec knows about the instruction set
package mc

import (
	"fmt"
	"strings"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/registers"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
	"github.com/Manu343726/xtensa/pkg/utils"
)

// Contains implementation information about the machine code
type MachineCodeDescriptor struct {
	// Information about instruction opcodes
	OpCodes *instructions.OpCodesDescriptor
	// Information about machine instructions
	Instructions *instructions.InstructionsDescriptor
	// Information about machine registers classes
	RegisterClasses *registers.RegisterClassesDescriptor
}

// Dumps all the MC description as one big multiline string
func (d *MachineCodeDescriptor) Documentation(leftpad int) (string, error) {
	leftpad_str := strings.Repeat(" ", leftpad)

	var builder strings.Builder

	all := d.Instructions.AllInstructions()

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("total supported opcodes: %v\n", d.OpCodes.TotalOpCodes()))
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("total implemented instructions: %v\n", len(all)))
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("instruction encoding lengths (bits): %v\n\n", utils.FormatSlice(utils.Map(d.Instructions.Sizes(), utils.Bits), ", ")))

	builder.WriteString(leftpad_str)
	builder.WriteString("Register classes:\n\n")

	for _, class := range d.RegisterClasses.AllClasses() {
		builder.WriteString(fmt.Sprintf("%v - %v (%v registers): %v\n", leftpad_str, class.Class, class.TotalRegisters(), utils.FormatSlice(class.AllRegisters(), " ")))
	}

	builder.WriteString("\n")
	builder.WriteString(leftpad_str)
	builder.WriteString("Instructions:\n\n")

	for _, instruction := range all {
		doc, err := d.InstructionDocumentation(instruction, leftpad+2)

		if err != nil {
			return "", err
		}

		builder.WriteString(doc)
		builder.WriteString("\n\n")
	}

	return builder.String(), nil
}

// Documents a single instruction: description, bit layout and opcode pattern
func (d *MachineCodeDescriptor) InstructionDocumentation(instruction *instructions.InstructionDescriptor, leftpad int) (string, error) {
	doc, err := instruction.Documentation(leftpad)

	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%v\n%v  Opcode: %v", strings.TrimRight(doc, "\n"), strings.Repeat(" ", leftpad), instruction.OpCode), nil
}

// Like Documentation(), but with zero leftpad
func (d *MachineCodeDescriptor) DocString() (string, error) {
	return d.Documentation(0)
}

// Returns the instructions available with the given core options
func (d *MachineCodeDescriptor) Available(features types.FeatureSet) []*instructions.InstructionDescriptor {
	result := []*instructions.InstructionDescriptor{}

	for _, instruction := range d.Instructions.AllInstructions() {
		if features.HasAll(instruction.Features) {
			result = append(result, instruction)
		}
	}

	return result
}

func makeMachineCodeDescriptor() MachineCodeDescriptor {
	return MachineCodeDescriptor{
		OpCodes:         &instructions.Opcodes,
		Instructions:    &instructions.Instructions,
		RegisterClasses: &registers.RegisterClasses,
	}
}

// Contains implementation information about the machine code
var Descriptor MachineCodeDescriptor = makeMachineCodeDescriptor()
