package instructions

import (
	"strings"
	"testing"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/registers"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
	"github.com/Manu343726/xtensa/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllOpCodesHaveInstructions(t *testing.T) {
	assert.Equal(t, int(TOTAL_OPCODES), Opcodes.TotalOpCodes())

	for _, op := range Opcodes.AllOpCodes() {
		descriptor, err := Instructions.Instruction(op)
		require.NoError(t, err, "%v", op)
		assert.Equal(t, op, descriptor.OpCode.OpCode)
		assert.Contains(t, []int{2, 3}, descriptor.Size())
	}

	assert.Equal(t, []int{2, 3}, Instructions.Sizes())
}

func TestMatchComposedWords(t *testing.T) {
	for _, instruction := range Instructions.AllInstructions() {
		t.Run(instruction.OpCode.Mnemonic, func(t *testing.T) {
			patterns := map[string]func(op *OperandDescriptor) uint64{
				"zeros": func(op *OperandDescriptor) uint64 { return 0 },
				"ones":  func(op *OperandDescriptor) uint64 { return utils.AllOnes[uint64](op.FieldBits()) },
				"alternating": func(op *OperandDescriptor) uint64 {
					return 0xAAAAAAAA & utils.AllOnes[uint64](op.FieldBits())
				},
			}

			for name, pattern := range patterns {
				fields := utils.Map(instruction.Operands, pattern)

				word, err := Instructions.Compose(instruction.OpCode.OpCode, fields)
				require.NoError(t, err, name)

				op, matched, err := Instructions.Match(word, instruction.Size())
				require.NoError(t, err, "%v: %v", name, utils.FormatUintHex(word, 6))
				assert.Equal(t, instruction.OpCode.OpCode, op, "%v: %v matched as %v", name, utils.FormatUintHex(word, 6), op)
				assert.Equal(t, fields, matched, name)
			}
		})
	}
}

func TestMatch_KnownWords(t *testing.T) {
	tests := []struct {
		word   uint64
		size   int
		op     OpCode
		fields []uint64
	}{
		{word: 0x802340, size: 3, op: OpCode_ADD, fields: []uint64{2, 3, 4}},
		{word: 0x0020F0, size: 3, op: OpCode_NOP, fields: []uint64{}},
		{word: 0x000080, size: 3, op: OpCode_RET, fields: []uint64{}},
		{word: 0x1F2132, size: 3, op: OpCode_L32I, fields: []uint64{3, 0x1F1}},
		{word: 0x001005, size: 3, op: OpCode_CALL0, fields: []uint64{0x40}},
		{word: 0x3AAC12, size: 3, op: OpCode_MOVI, fields: []uint64{1, 0xC3A}},
		{word: 0x11AE10, size: 3, op: OpCode_SLLI, fields: []uint64{0xA, 0xE, 0x11}},
		{word: 0xF3E710, size: 3, op: OpCode_WUR, fields: []uint64{1, 0xE7}},
		{word: 0x03E630, size: 3, op: OpCode_RSR, fields: []uint64{3, 0xE6}},
		{word: 0x2A38, size: 2, op: OpCode_L32I_N, fields: []uint64{3, 0x2A}},
		{word: 0xF00D, size: 2, op: OpCode_RET_N, fields: []uint64{}},
		{word: 0x0A2D, size: 2, op: OpCode_MOV_N, fields: []uint64{2, 0xA}},
		{word: 0x5F6C, size: 2, op: OpCode_MOVI_N, fields: []uint64{0xF, 0x65}},
	}

	for _, tt := range tests {
		op, fields, err := Instructions.Match(tt.word, tt.size)
		require.NoError(t, err, "%#x", tt.word)
		assert.Equal(t, tt.op, op, "%#x", tt.word)
		assert.Equal(t, tt.fields, fields, "%#x", tt.word)
	}
}

func TestMatch_NoMatch(t *testing.T) {
	// op0 values of the density option never start a 24 bit instruction
	_, _, err := Instructions.Match(0x00000A, 3)
	assert.ErrorIs(t, err, types.ErrNoMatch)
	assert.True(t, types.IsDecodeFailure(err))

	// op0 values of 24 bit instructions never start a 16 bit one
	_, _, err = Instructions.Match(0x0002, 2)
	assert.ErrorIs(t, err, types.ErrNoMatch)

	// BEQZ.N is not implemented
	_, _, err = Instructions.Match(0x008C, 2)
	assert.ErrorIs(t, err, types.ErrNoMatch)
}

func TestCompose_RejectsWideFields(t *testing.T) {
	_, err := Instructions.Compose(OpCode_ADD, []uint64{16, 0, 0})
	assert.ErrorIs(t, err, types.ErrOutOfRange)

	_, err = Instructions.Compose(OpCode_ADD, []uint64{1, 2})
	assert.ErrorIs(t, err, types.ErrOperandShape)
}

func TestOperandDescriptor_SplitFields(t *testing.T) {
	movi, err := Instructions.Instruction(OpCode_MOVI)
	require.NoError(t, err)

	constant := movi.Operands[1]
	assert.Equal(t, 12, constant.FieldBits())

	var word uint64
	require.NoError(t, constant.Insert(&word, 0xABC))
	assert.Equal(t, uint64(0xBC0A00), word)
	assert.Equal(t, uint64(0xABC), constant.Extract(word))
}

func TestParseInstruction(t *testing.T) {
	tests := []struct {
		text     string
		op       OpCode
		operands []OperandValue
	}{
		{
			text: "add a2, a3, a4",
			op:   OpCode_ADD,
			operands: []OperandValue{
				RegisterOperandValue(registers.Register_A2),
				RegisterOperandValue(registers.Register_A3),
				RegisterOperandValue(registers.Register_A4),
			},
		},
		{
			text: "L32I a2, sp, 8",
			op:   OpCode_L32I,
			operands: []OperandValue{
				RegisterOperandValue(registers.Register_A2),
				RegisterOperandValue(registers.Register_A1),
				ImmediateValue(8),
			},
		},
		{
			text:     "call8 printf+4",
			op:       OpCode_CALL8,
			operands: []OperandValue{SymbolicValue(SymbolRef{Symbol: "printf", Addend: 4})},
		},
		{
			text: "beqi a3, -1, 0x10",
			op:   OpCode_BEQI,
			operands: []OperandValue{
				RegisterOperandValue(registers.Register_A3),
				ImmediateValue(-1),
				ImmediateValue(16),
			},
		},
		{
			text: "rsr a0, ps",
			op:   OpCode_RSR,
			operands: []OperandValue{
				RegisterOperandValue(registers.Register_A0),
				RegisterOperandValue(registers.Register_PS),
			},
		},
		{
			text: "nop",
			op:   OpCode_NOP,
		},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			instruction, err := ParseInstruction(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.op, instruction.Descriptor.OpCode.OpCode)
			assert.Equal(t, len(tt.operands), len(instruction.Operands))

			for i := range tt.operands {
				assert.Equal(t, tt.operands[i], instruction.Operands[i])
			}
		})
	}
}

func TestParseInstruction_Errors(t *testing.T) {
	_, err := ParseInstruction("frobnicate a1")
	assert.ErrorIs(t, err, ErrInvalidOpCode)

	_, err = ParseInstruction("add a1, a2")
	assert.ErrorIs(t, err, types.ErrOperandShape)

	_, err = ParseInstruction("add a1, a2, a99")
	assert.ErrorIs(t, err, registers.ErrInvalidRegister)

	_, err = ParseInstruction("rsr a0, a1")
	assert.ErrorIs(t, err, types.ErrWrongRegisterClass)

	// ADDI does not take symbols
	_, err = ParseInstruction("addi a1, a2, foo")
	assert.ErrorIs(t, err, types.ErrOperandShape)
}

func TestInstructionString(t *testing.T) {
	instruction := MustInstruction(OpCode_L32I,
		RegisterOperandValue(registers.Register_A2),
		RegisterOperandValue(registers.Register_A1),
		ImmediateValue(8),
	)
	assert.Equal(t, "l32i a2, a1, 8", instruction.String())

	call := MustInstruction(OpCode_CALL8, SymbolicValue(SymbolRef{Symbol: "foo", Addend: -8}))
	assert.Equal(t, "call8 foo-8", call.String())

	assert.Equal(t, "ret.n", MustInstruction(OpCode_RET_N).String())
}

func TestNewInstruction_Rejections(t *testing.T) {
	add, err := Instructions.Instruction(OpCode_ADD)
	require.NoError(t, err)

	_, err = NewInstruction(add, []OperandValue{ImmediateValue(1)})
	assert.ErrorIs(t, err, types.ErrOperandShape)

	_, err = NewInstruction(add, []OperandValue{
		RegisterOperandValue(registers.Register_A1),
		ImmediateValue(2),
		RegisterOperandValue(registers.Register_A3),
	})
	assert.ErrorIs(t, err, types.ErrOperandShape)

	l32i, err := Instructions.Instruction(OpCode_L32I)
	require.NoError(t, err)

	_, err = NewInstruction(l32i, []OperandValue{
		RegisterOperandValue(registers.Register_A1),
		ImmediateValue(8),
		RegisterOperandValue(registers.Register_A3),
	})
	assert.ErrorIs(t, err, types.ErrOperandShape)
}

func TestSymbolRef(t *testing.T) {
	tests := []struct {
		text     string
		expected SymbolRef
		str      string
	}{
		{"foo", SymbolRef{Symbol: "foo"}, "foo"},
		{"foo+12", SymbolRef{Symbol: "foo", Addend: 12}, "foo+12"},
		{".Ltmp0-0x4", SymbolRef{Symbol: ".Ltmp0", Addend: -4}, ".Ltmp0-4"},
		{"tls_var@TPOFF", SymbolRef{Symbol: "tls_var", Variant: SymbolVariant_TPOFF}, "tls_var@tpoff"},
	}

	for _, tt := range tests {
		symbol, err := ParseSymbolRef(tt.text)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.expected, symbol)
		assert.Equal(t, tt.str, symbol.String())
	}

	_, err := ParseSymbolRef("foo@gotoff")
	assert.ErrorIs(t, err, types.ErrOperandShape)

	_, err = ParseSymbolRef("")
	assert.ErrorIs(t, err, types.ErrOperandShape)
}

func TestDocumentation(t *testing.T) {
	for _, instruction := range Instructions.AllInstructions() {
		doc, err := instruction.Documentation(0)
		require.NoError(t, err, instruction.OpCode.Mnemonic)
		assert.Contains(t, doc, instruction.OpCode.Mnemonic)
		assert.Contains(t, doc, instruction.Description)
	}

	movi, err := Instructions.Instruction(OpCode_MOVI)
	require.NoError(t, err)

	doc, err := movi.Documentation(0)
	require.NoError(t, err)
	assert.Contains(t, doc, "[1.0]")
	assert.Contains(t, doc, "[1.1]")
	assert.Contains(t, doc, "1010")
}

func TestRawInstruction(t *testing.T) {
	add, err := Instructions.Instruction(OpCode_ADD)
	require.NoError(t, err)

	raw := RawInstruction{Descriptor: add, Fields: []uint64{2, 3, 4}}
	word, err := raw.Encode()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x802340), word)
	assert.Equal(t, "add 0x2, 0x3, 0x4", raw.String())

	frame, err := raw.PrettyPrint(0)
	require.NoError(t, err)
	assert.Contains(t, frame, "0010")
	assert.Contains(t, frame, "1000")
}

func TestOpCodeMnemonics(t *testing.T) {
	tests := []struct {
		op       OpCode
		mnemonic string
	}{
		{OpCode_ADD, "add"},
		{OpCode_L32I, "l32i"},
		{OpCode_ADD_N, "add.n"},
		{OpCode_RET_N, "ret.n"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.mnemonic, Opcodes.Mnemonic(tt.op))
		assert.Equal(t, tt.mnemonic, tt.op.String())

		for _, text := range []string{tt.mnemonic, strings.ToUpper(tt.mnemonic), " " + tt.mnemonic + " "} {
			op, err := Opcodes.ParseOpCode(text)
			require.NoError(t, err, text)
			assert.Equal(t, tt.op, op, text)
		}
	}

	for _, op := range Opcodes.AllOpCodes() {
		assert.Equal(t, strings.ToLower(op.String()), op.String())
	}
}
