package mc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/operands"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
	"github.com/Manu343726/xtensa/pkg/utils"
)

// Encoded code and data with the fixups still pending on it
type Section struct {
	Bytes []byte
	// Fixups with offsets relative to the start of the section
	Fixups []Fixup
	// Offset of each label defined in the section
	Labels map[string]uint64
	// Instructions in the order they were encoded
	Instructions []*instructions.Instruction
}

var (
	ErrSyntax         = errors.New("syntax error")
	ErrDuplicateLabel = errors.New("duplicate label")
)

// Assembles lines of the form '[label:] [mnemonic operands | .word expr | .byte n, ...] [# comment]'
//
// Branch, jump and call operands naming a label of the section are resolved
// to PC-relative values, assuming the section starts word aligned. Any other
// symbolic operand is reported as a fixup
type Assembler struct {
	encoder *Encoder
}

func NewAssembler(encoder *Encoder) *Assembler {
	return &Assembler{encoder: encoder}
}

// A line already parsed, placed at its offset in the section
type statement struct {
	loc         types.SourceLocation
	offset      uint64
	instruction *instructions.Instruction
	// Directive output, fixup offsets relative to the statement
	bytes  []byte
	fixups []Fixup
}

// Assembles the lines of a source file. Errors are prefixed with their location
func (a *Assembler) Assemble(file string, lines []string) (*Section, error) {
	section := &Section{
		Bytes:        []byte{},
		Fixups:       []Fixup{},
		Labels:       make(map[string]uint64),
		Instructions: []*instructions.Instruction{},
	}

	statements := []statement{}
	offset := uint64(0)

	for i, line := range lines {
		loc := types.SourceLocation{File: file, Line: i + 1, Column: 1}
		stmt, err := a.parseLine(section, line, loc, offset)

		if err != nil {
			return nil, fmt.Errorf("%v: %w", loc, err)
		}

		if stmt == nil {
			continue
		}

		if stmt.instruction != nil {
			offset += uint64(stmt.instruction.Descriptor.Size())
		} else {
			offset += uint64(len(stmt.bytes))
		}

		statements = append(statements, *stmt)
	}

	for _, stmt := range statements {
		if err := a.emit(section, &stmt); err != nil {
			return nil, fmt.Errorf("%v: %w", stmt.loc, err)
		}
	}

	return section, nil
}

// Records the label of the line and parses the rest. Returns nil for lines without code
func (a *Assembler) parseLine(section *Section, line string, loc types.SourceLocation, offset uint64) (*statement, error) {
	if comment := strings.IndexAny(line, "#;"); comment >= 0 {
		line = line[:comment]
	}

	text := strings.TrimSpace(line)

	if label, rest, isLabel := strings.Cut(text, ":"); isLabel {
		label = strings.TrimSpace(label)

		if label == "" || strings.ContainsAny(label, " \t,") {
			return nil, utils.MakeError(ErrSyntax, "invalid label '%v'", label)
		}

		if _, exists := section.Labels[label]; exists {
			return nil, utils.MakeError(ErrDuplicateLabel, "'%v'", label)
		}

		section.Labels[label] = offset
		text = strings.TrimSpace(rest)
	}

	if text == "" {
		return nil, nil
	}

	loc.Column = strings.Index(line, text) + 1

	if strings.HasPrefix(text, ".") {
		bytes, fixups, err := a.assembleDirective(text, loc)

		if err != nil {
			return nil, err
		}

		return &statement{loc: loc, offset: offset, bytes: bytes, fixups: fixups}, nil
	}

	instruction, err := instructions.ParseInstruction(text)

	if err != nil {
		return nil, err
	}

	instruction.Location = loc
	return &statement{loc: loc, offset: offset, instruction: instruction}, nil
}

func (a *Assembler) emit(section *Section, stmt *statement) error {
	bytes, fixups := stmt.bytes, stmt.fixups

	if stmt.instruction != nil {
		resolveLocalLabels(stmt.instruction, stmt.offset, section.Labels)

		var err error
		bytes, fixups, err = a.encoder.Encode(stmt.instruction)

		if err != nil {
			return err
		}

		section.Instructions = append(section.Instructions, stmt.instruction)
	}

	for _, fixup := range fixups {
		fixup.Offset += stmt.offset
		section.Fixups = append(section.Fixups, fixup)
	}

	section.Bytes = append(section.Bytes, bytes...)
	return nil
}

// Replaces branch, jump and call operands referencing a label of the section
// with their offset from the PC the instruction is relative to
func resolveLocalLabels(instruction *instructions.Instruction, address uint64, labels map[string]uint64) {
	for _, operand := range instruction.Descriptor.Operands {
		if !operand.IsImmediate() {
			continue
		}

		switch operand.Encoding {
		case operands.Encoding_CallTarget, operands.Encoding_JumpTarget, operands.Encoding_BranchTarget12, operands.Encoding_BranchTarget8:
		default:
			continue
		}

		value := instruction.Operands[operand.Slot]

		if !value.IsSymbolic() || value.Symbol().Variant != instructions.SymbolVariant_None {
			continue
		}

		target, defined := labels[value.Symbol().Symbol]

		if !defined {
			continue
		}

		pc := operands.Target(operand.Encoding, 0, address)
		instruction.Operands[operand.Slot] = instructions.ImmediateValue(int64(target) + value.Symbol().Addend - int64(pc))
	}
}

func (a *Assembler) assembleDirective(text string, loc types.SourceLocation) ([]byte, []Fixup, error) {
	directive, rest, _ := strings.Cut(text, " ")
	args := utils.Map(strings.Split(rest, ","), strings.TrimSpace)

	switch strings.ToLower(directive) {
	case ".word":
		if len(args) != 1 || args[0] == "" {
			return nil, nil, utils.MakeError(ErrSyntax, ".word takes one value")
		}

		if value, err := instructions.ParseImmediate(args[0]); err == nil {
			if !utils.IsInt(32, value.Immediate()) && !utils.IsUInt(32, value.Immediate()) {
				return nil, nil, utils.MakeError(types.ErrOutOfRange, ".word value %v does not fit in 32 bits", value)
			}

			return writeWord(uint64(value.Immediate()), 4), nil, nil
		}

		symbol, err := instructions.ParseSymbolRef(args[0])

		if err != nil {
			return nil, nil, err
		}

		return []byte{0, 0, 0, 0}, []Fixup{DataFixup(symbol, 0, loc)}, nil

	case ".byte":
		bytes := []byte{}

		for _, arg := range args {
			value, err := strconv.ParseUint(arg, 0, 8)

			if err != nil {
				return nil, nil, utils.MakeError(ErrSyntax, "invalid byte '%v': %v", arg, err)
			}

			bytes = append(bytes, byte(value))
		}

		return bytes, nil, nil
	}

	return nil, nil, utils.MakeError(ErrSyntax, "unknown directive '%v'", directive)
}
