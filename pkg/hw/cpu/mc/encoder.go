package mc

import (
	"fmt"
	"log/slog"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
	"github.com/Manu343726/xtensa/pkg/utils"
)

// Encodes instructions into little endian Xtensa machine code. Encoders are
// immutable and safe for concurrent use
type Encoder struct {
	config Config
	table  OpcodeTable
	logger *slog.Logger
}

// Creates an encoder. A nil table encodes the instructions implemented by the codec
func NewEncoder(config Config, table OpcodeTable) (*Encoder, error) {
	if err := config.ByteOrder.Validate(); err != nil {
		return nil, utils.MakeError(err, "cannot encode %v endian code", config.ByteOrder)
	}

	if table == nil {
		table = DefaultTable()
	}

	return &Encoder{
		config: config,
		table:  table,
		logger: config.logger().With("component", "encoder"),
	}, nil
}

// Returns the encoder configuration
func (e *Encoder) Config() Config {
	return e.config
}

// Encodes an instruction. Symbolic operands are encoded as zero and reported
// as fixups with offsets relative to the first byte of the instruction.
//
// All errors are fatal: they mean the instruction was built with operands the
// machine cannot encode, or needs features the encoder was not configured with
func (e *Encoder) Encode(instruction *instructions.Instruction) ([]byte, []Fixup, error) {
	descriptor := instruction.Descriptor
	op := descriptor.OpCode.OpCode

	if missing := e.config.Features.Missing(descriptor.Features); missing != 0 {
		return nil, nil, utils.MakeError(types.ErrFeatureDisabled, "%v requires %v", op, missing)
	}

	if len(instruction.Operands) != descriptor.TotalSlots() {
		return nil, nil, utils.MakeError(types.ErrOperandShape, "%v expects %v operand values, got %v", op, descriptor.TotalSlots(), len(instruction.Operands))
	}

	fields := make([]uint64, len(descriptor.Operands))
	fixups := []Fixup{}

	for i, operand := range descriptor.Operands {
		values := instruction.OperandValues(operand)

		if values[0].IsSymbolic() {
			fixup, err := e.fixup(instruction, operand, values[0].Symbol())

			if err != nil {
				return nil, nil, err
			}

			fixups = append(fixups, fixup)
			continue
		}

		raw, err := operand.EncodeValues(values)

		if err != nil {
			return nil, nil, fmt.Errorf("%v operand [%v] '%v': %w", op, i, instruction, err)
		}

		fields[i] = raw
	}

	word, err := e.table.Compose(op, fields)

	if err != nil {
		return nil, nil, err
	}

	return writeWord(word, descriptor.Size()), fixups, nil
}

func (e *Encoder) fixup(instruction *instructions.Instruction, operand *instructions.OperandDescriptor, symbol instructions.SymbolRef) (Fixup, error) {
	if !operand.AcceptsSymbol() {
		return Fixup{}, utils.MakeError(types.ErrOperandShape, "operand [%v] of %v cannot reference symbol '%v'", operand.Index, instruction.Descriptor.OpCode.Mnemonic, symbol)
	}

	kind, err := FixupKindFor(operand.Encoding)

	if err != nil {
		return Fixup{}, err
	}

	fixup := Fixup{
		Expr: symbol,
		Kind: kind,
		Loc:  instruction.Location,
	}

	e.logger.Debug("emitting fixup", "instruction", instruction.String(), "kind", kind.String(), "expr", symbol.String())
	return fixup, nil
}

func writeWord(word uint64, size int) []byte {
	bytes := make([]byte, size)

	for i := range bytes {
		bytes[i] = byte(word >> utils.Bits(i))
	}

	return bytes
}
