package mc

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/operands"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
	"github.com/Manu343726/xtensa/pkg/utils"
)

// Decodes little endian Xtensa machine code. Decoders are immutable and safe
// for concurrent use
type Decoder struct {
	config     Config
	table      OpcodeTable
	symbolizer Symbolizer
	logger     *slog.Logger
}

// Creates a decoder. A nil table decodes the instructions implemented by the codec
func NewDecoder(config Config, table OpcodeTable) (*Decoder, error) {
	if err := config.ByteOrder.Validate(); err != nil {
		return nil, utils.MakeError(err, "cannot decode %v endian code", config.ByteOrder)
	}

	if table == nil {
		table = DefaultTable()
	}

	return &Decoder{
		config: config,
		table:  table,
		logger: config.logger().With("component", "decoder"),
	}, nil
}

// Returns a copy of the decoder that resolves branch, jump and call targets through s
func (d *Decoder) WithSymbolizer(s Symbolizer) *Decoder {
	result := *d
	result.symbolizer = s
	return &result
}

// Returns the decoder configuration
func (d *Decoder) Config() Config {
	return d.config
}

// Decodes the instruction at the start of bytes, located at the given address.
//
// Returns the instruction and its size in bytes. On a recoverable failure the
// size tells how many bytes the caller can skip: zero means the input ended
// before a full instruction word
func (d *Decoder) Decode(bytes []byte, address uint64) (*instructions.Instruction, int, error) {
	var (
		size int
		err  error
	)

	for _, width := range d.config.Widths() {
		var instruction *instructions.Instruction

		d.logger.Debug("trying instruction table", "address", address, "bits", utils.Bits(width))
		instruction, size, err = d.decodeWidth(bytes, address, width)

		if err == nil {
			return instruction, size, nil
		}

		if size == 0 || types.IsFatal(err) {
			return nil, size, err
		}
	}

	return nil, size, err
}

func (d *Decoder) decodeWidth(bytes []byte, address uint64, size int) (*instructions.Instruction, int, error) {
	if len(bytes) < size {
		return nil, 0, utils.MakeError(types.ErrTruncatedInput, "need %v bytes at %#x, %v left", size, address, len(bytes))
	}

	word := readWord(bytes, size)
	op, fields, err := d.table.Match(word, size)

	if err != nil {
		return nil, size, err
	}

	descriptor, err := d.table.Instruction(op)

	if err != nil {
		return nil, size, utils.MakeError(types.ErrInvariantViolation, "opcode table matched %v but has no descriptor for it: %v", op, err)
	}

	if missing := d.config.Features.Missing(descriptor.Features); missing != 0 {
		return nil, size, utils.MakeError(types.ErrNoMatch, "%v at %#x requires disabled features %v", op, address, missing)
	}

	if len(fields) != len(descriptor.Operands) {
		return nil, size, utils.MakeError(types.ErrOperandShape, "opcode table returned %v fields for %v, expected %v", len(fields), op, len(descriptor.Operands))
	}

	values := make([]instructions.OperandValue, 0, descriptor.TotalSlots())

	for i, operand := range descriptor.Operands {
		decoded, err := operand.DecodeValues(fields[i], address)

		if err != nil {
			return nil, size, fmt.Errorf("%v operand [%v] at %#x: %w", op, i, address, err)
		}

		if d.symbolizer != nil && operand.AcceptsSymbol() && operand.Encoding != operands.Encoding_L32RTarget {
			target := operands.Target(operand.Encoding, decoded[0].Immediate(), address)

			if symbol, ok := d.symbolizer.Symbolize(int64(target), true, address, 0, uint64(size)); ok {
				d.logger.Debug("symbolized operand", "address", address, "target", target, "symbol", symbol.String())
				decoded[0] = instructions.SymbolicValue(symbol)
			}
		}

		values = append(values, decoded...)
	}

	return &instructions.Instruction{
		Descriptor: descriptor,
		Operands:   values,
	}, size, nil
}

func readWord(bytes []byte, size int) uint64 {
	var word uint64

	for i := size - 1; i >= 0; i-- {
		word = word<<8 | uint64(bytes[i])
	}

	return word
}

// Decoded instruction or undecodable bytes of a disassembled buffer
type Line struct {
	Address     uint64
	Bytes       []byte
	Instruction *instructions.Instruction
	// Recoverable failure that made the bytes undecodable
	Err error
}

func (l Line) String() string {
	return l.Format(nil)
}

// Formats the line as address, bytes and text. If not nil, highlight is
// applied to the text column
func (l Line) Format(highlight func(text string) string) string {
	var text string

	if l.Instruction != nil {
		text = l.Instruction.String()
	} else {
		text = ".byte " + utils.FormatSlice(utils.Map(l.Bytes, func(b byte) string {
			return utils.FormatUintHex(uint64(b), 2)
		}), ", ")
	}

	if highlight != nil {
		text = highlight(text)
	}

	return fmt.Sprintf("%08x:  %-8s  %v", l.Address, fmt.Sprintf("%x", l.Bytes), text)
}

var ErrDisassembly = errors.New("disassembly aborted")

// Decodes a whole buffer placed at the given address. Undecodable bytes are
// skipped as far as the decoder reports and returned as data lines. Fatal
// decode errors abort the disassembly and discard the lines decoded so far
func (d *Decoder) Disassemble(code []byte, address uint64) ([]Line, error) {
	lines := []Line{}
	offset := 0

	for offset < len(code) {
		current := address + uint64(offset)
		instruction, size, err := d.Decode(code[offset:], current)

		if err != nil {
			if types.IsFatal(err) {
				return nil, fmt.Errorf("%w at %#x: %w", ErrDisassembly, current, err)
			}

			if size == 0 {
				size = len(code) - offset
			}

			d.logger.Debug("undecodable bytes", "address", current, "size", size, "error", err)
			lines = append(lines, Line{Address: current, Bytes: code[offset : offset+size], Err: err})
			offset += size
			continue
		}

		lines = append(lines, Line{Address: current, Bytes: code[offset : offset+size], Instruction: instruction})
		offset += size
	}

	return lines, nil
}
