package mc

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
	"github.com/golang/mock/gomock"
	"github.com/sourcegraph/conc/iter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDecoder(t *testing.T, features ...types.Feature) *Decoder {
	t.Helper()

	decoder, err := NewDecoder(Config{Features: types.MakeFeatureSet(features...)}, nil)
	require.NoError(t, err)
	return decoder
}

func defaultDecoder(t *testing.T) *Decoder {
	t.Helper()

	decoder, err := NewDecoder(DefaultConfig(), nil)
	require.NoError(t, err)
	return decoder
}

func TestNewDecoder_RejectsBigEndian(t *testing.T) {
	_, err := NewDecoder(Config{ByteOrder: types.BigEndian, Features: DefaultFeatures}, nil)
	require.ErrorIs(t, err, types.ErrUnsupportedByteOrder)
	assert.True(t, types.IsFatal(err))
}

func TestDecode_KnownInstructions(t *testing.T) {
	tests := []struct {
		name    string
		bytes   []byte
		address uint64
		size    int
		op      instructions.OpCode
		text    string
	}{
		{name: "add", bytes: []byte{0x40, 0x23, 0x80}, size: 3, op: instructions.OpCode_ADD, text: "add a2, a3, a4"},
		{name: "nop", bytes: []byte{0xF0, 0x20, 0x00}, size: 3, op: instructions.OpCode_NOP, text: "nop"},
		{name: "l32i", bytes: []byte{0x32, 0x21, 0x1F}, size: 3, op: instructions.OpCode_L32I, text: "l32i a3, a1, 124"},
		{name: "ret.n", bytes: []byte{0x0D, 0xF0}, size: 2, op: instructions.OpCode_RET_N, text: "ret.n"},
		{name: "mov.n", bytes: []byte{0x2D, 0x0A}, size: 2, op: instructions.OpCode_MOV_N, text: "mov.n a2, a10"},
		{name: "call8", bytes: []byte{0x25, 0x10, 0x00}, size: 3, op: instructions.OpCode_CALL8, text: "call8 256"},
		{name: "beqz", bytes: []byte{0x16, 0x02, 0x01}, address: 0x1000, size: 3, op: instructions.OpCode_BEQZ, text: "beqz a2, 16"},
		{name: "bne backwards", bytes: []byte{0x37, 0x92, 0xF8}, size: 3, op: instructions.OpCode_BNE, text: "bne a2, a3, -8"},
		{name: "trailing bytes ignored", bytes: []byte{0x0D, 0xF0, 0xFF, 0xFF}, size: 2, op: instructions.OpCode_RET_N, text: "ret.n"},
	}

	decoder := defaultDecoder(t)

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			instruction, size, err := decoder.Decode(test.bytes, test.address)
			require.NoError(t, err)
			assert.Equal(t, test.size, size)
			assert.Equal(t, test.op, instruction.Descriptor.OpCode.OpCode)
			assert.Equal(t, test.text, instruction.String())
		})
	}
}

func TestDecode_TruncatedInput(t *testing.T) {
	tests := []struct {
		name     string
		bytes    []byte
		features []types.Feature
	}{
		{name: "empty", bytes: []byte{}, features: []types.Feature{types.Feature_Density}},
		{name: "one byte with density", bytes: []byte{0x0D}, features: []types.Feature{types.Feature_Density}},
		{name: "two bytes of a wide instruction", bytes: []byte{0x40, 0x23}, features: []types.Feature{types.Feature_Density}},
		{name: "two bytes without density", bytes: []byte{0x0D, 0xF0}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			instruction, size, err := newDecoder(t, test.features...).Decode(test.bytes, 0)
			require.ErrorIs(t, err, types.ErrTruncatedInput)
			assert.True(t, types.IsDecodeFailure(err))
			assert.False(t, types.IsFatal(err))
			assert.Zero(t, size)
			assert.Nil(t, instruction)
		})
	}
}

func TestDecode_NoMatch(t *testing.T) {
	tests := []struct {
		name     string
		bytes    []byte
		features []types.Feature
	}{
		{name: "reserved major opcode", bytes: []byte{0x0F, 0x00, 0x00}, features: []types.Feature{types.Feature_Density}},
		{name: "narrow instruction without density", bytes: []byte{0x0D, 0xF0, 0x00}},
		{name: "windowed call without windowed option", bytes: []byte{0x25, 0x10, 0x00}, features: []types.Feature{types.Feature_Density}},
		{name: "float instruction without float option", bytes: []byte{0x00, 0x00, 0x0A}, features: []types.Feature{types.Feature_Density}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			instruction, size, err := newDecoder(t, test.features...).Decode(test.bytes, 0)
			require.ErrorIs(t, err, types.ErrNoMatch)
			assert.False(t, types.IsFatal(err))
			assert.Equal(t, 3, size)
			assert.Nil(t, instruction)
		})
	}
}

func TestDecode_EnabledOptionalInstructions(t *testing.T) {
	decoder := newDecoder(t, types.Feature_SingleFloat)

	instruction, size, err := decoder.Decode([]byte{0x40, 0x23, 0x0A}, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, size)
	assert.Equal(t, "add.s f2, f3, f4", instruction.String())
}

func TestDecode_L32RDependsOnAddress(t *testing.T) {
	decoder := defaultDecoder(t)
	// l32r a2, raw 0xFFFF
	word := []byte{0x21, 0xFF, 0xFF}

	for _, address := range []uint64{0x1000, 0x1001, 0x1002, 0x1003} {
		instruction, _, err := decoder.Decode(word, address)
		require.NoError(t, err)
		assert.Equal(t, int64(-4)+int64(address&3), instruction.Operands[1].Immediate(), "address %#x", address)
	}
}

func TestDecode_Symbolizer(t *testing.T) {
	type call struct {
		value    int64
		isBranch bool
		address  uint64
		offset   uint64
		width    uint64
	}

	tests := []struct {
		name    string
		bytes   []byte
		address uint64
		call    call
		text    string
	}{
		{
			name:    "branch12",
			bytes:   []byte{0x16, 0x02, 0x01},
			address: 0x1000,
			call:    call{value: 0x1014, isBranch: true, address: 0x1000, offset: 0, width: 3},
			text:    "beqz a2, target",
		},
		{
			name:    "branch8",
			bytes:   []byte{0x37, 0x92, 0xF8},
			address: 0x2000,
			call:    call{value: 0x1FFC, isBranch: true, address: 0x2000, offset: 0, width: 3},
			text:    "bne a2, a3, target",
		},
		{
			name:    "call from unaligned address",
			bytes:   []byte{0x25, 0x10, 0x00},
			address: 0x1002,
			call:    call{value: 0x1104, isBranch: true, address: 0x1002, offset: 0, width: 3},
			text:    "call8 target",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var calls []call

			accept := SymbolizerFunc(func(value int64, isBranch bool, address uint64, offset uint64, width uint64) (instructions.SymbolRef, bool) {
				calls = append(calls, call{value, isBranch, address, offset, width})
				return instructions.SymbolRef{Symbol: "target"}, true
			})

			instruction, _, err := defaultDecoder(t).WithSymbolizer(accept).Decode(test.bytes, test.address)
			require.NoError(t, err)
			assert.Equal(t, []call{test.call}, calls)
			assert.Equal(t, test.text, instruction.String())
		})
	}
}

func TestDecode_SymbolizerDeclines(t *testing.T) {
	decline := SymbolizerFunc(func(int64, bool, uint64, uint64, uint64) (instructions.SymbolRef, bool) {
		return instructions.SymbolRef{}, false
	})

	instruction, _, err := defaultDecoder(t).WithSymbolizer(decline).Decode([]byte{0x16, 0x02, 0x01}, 0x1000)
	require.NoError(t, err)
	require.True(t, instruction.Operands[1].IsImmediate())
	assert.Equal(t, int64(16), instruction.Operands[1].Immediate())
}

func TestDecode_SymbolizerSkipsNonTargets(t *testing.T) {
	called := false
	symbolizer := SymbolizerFunc(func(int64, bool, uint64, uint64, uint64) (instructions.SymbolRef, bool) {
		called = true
		return instructions.SymbolRef{Symbol: "x"}, true
	})

	decoder := defaultDecoder(t).WithSymbolizer(symbolizer)

	for _, word := range [][]byte{{0x40, 0x23, 0x80}, {0x32, 0x21, 0x1F}, {0x21, 0xFF, 0xFF}} {
		_, _, err := decoder.Decode(word, 0)
		require.NoError(t, err)
	}

	assert.False(t, called)
}

func TestSymbolTable(t *testing.T) {
	table := &SymbolTable{Symbols: map[uint64]string{0x1000: "func", 0x1100: "other"}}

	symbol, ok := table.Symbolize(0x1000, true, 0, 0, 3)
	require.True(t, ok)
	assert.Equal(t, instructions.SymbolRef{Symbol: "func"}, symbol)

	_, ok = table.Symbolize(0x1014, true, 0, 0, 3)
	assert.False(t, ok)

	table.Nearest = true

	symbol, ok = table.Symbolize(0x1014, true, 0, 0, 3)
	require.True(t, ok)
	assert.Equal(t, "func+20", symbol.String())

	symbol, ok = table.Symbolize(0x1104, true, 0, 0, 3)
	require.True(t, ok)
	assert.Equal(t, "other+4", symbol.String())

	_, ok = table.Symbolize(0x0FFF, true, 0, 0, 3)
	assert.False(t, ok)
}

func TestDecode_TriesNarrowTableFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	table := NewMockOpcodeTable(ctrl)
	nop, err := instructions.Instructions.Instruction(instructions.OpCode_NOP)
	require.NoError(t, err)

	gomock.InOrder(
		table.EXPECT().Match(uint64(0xF00D), 2).Return(instructions.OpCode(0), nil, types.ErrNoMatch),
		table.EXPECT().Match(uint64(0x00F00D), 3).Return(instructions.OpCode_NOP, []uint64{}, nil),
		table.EXPECT().Instruction(instructions.OpCode_NOP).Return(nop, nil),
	)

	decoder, err := NewDecoder(DefaultConfig(), table)
	require.NoError(t, err)

	instruction, size, err := decoder.Decode([]byte{0x0D, 0xF0, 0x00}, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, size)
	assert.Equal(t, instructions.OpCode_NOP, instruction.Descriptor.OpCode.OpCode)
}

func TestDecode_NarrowMatchSkipsWideTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	table := NewMockOpcodeTable(ctrl)
	retn, err := instructions.Instructions.Instruction(instructions.OpCode_RET_N)
	require.NoError(t, err)

	table.EXPECT().Match(uint64(0xF00D), 2).Return(instructions.OpCode_RET_N, []uint64{}, nil)
	table.EXPECT().Instruction(instructions.OpCode_RET_N).Return(retn, nil)

	decoder, err := NewDecoder(DefaultConfig(), table)
	require.NoError(t, err)

	_, size, err := decoder.Decode([]byte{0x0D, 0xF0, 0x00}, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, size)
}

func TestDecode_WithoutDensityOnlyTriesWideTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	table := NewMockOpcodeTable(ctrl)

	table.EXPECT().Match(uint64(0x00F00D), 3).Return(instructions.OpCode(0), nil, types.ErrNoMatch)

	decoder, err := NewDecoder(Config{Features: types.MakeFeatureSet(types.Feature_Windowed)}, table)
	require.NoError(t, err)

	_, size, err := decoder.Decode([]byte{0x0D, 0xF0, 0x00}, 0)
	require.ErrorIs(t, err, types.ErrNoMatch)
	assert.Equal(t, 3, size)
}

func TestDecode_TruncatedInputNeverReachesTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	table := NewMockOpcodeTable(ctrl)

	decoder, err := NewDecoder(DefaultConfig(), table)
	require.NoError(t, err)

	_, size, err := decoder.Decode([]byte{0x0D}, 0)
	require.ErrorIs(t, err, types.ErrTruncatedInput)
	assert.Zero(t, size)
}

func TestDecode_InconsistentTableIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	table := NewMockOpcodeTable(ctrl)
	add, err := instructions.Instructions.Instruction(instructions.OpCode_ADD)
	require.NoError(t, err)

	table.EXPECT().Match(gomock.Any(), 2).Return(instructions.OpCode(0), nil, types.ErrNoMatch).AnyTimes()
	table.EXPECT().Match(uint64(0x802340), 3).Return(instructions.OpCode_ADD, []uint64{2}, nil)
	table.EXPECT().Instruction(instructions.OpCode_ADD).Return(add, nil)

	decoder, err := NewDecoder(DefaultConfig(), table)
	require.NoError(t, err)

	_, _, err = decoder.Decode([]byte{0x40, 0x23, 0x80}, 0)
	require.ErrorIs(t, err, types.ErrOperandShape)
	assert.True(t, types.IsFatal(err))
}

func TestDisassemble_FatalErrorDiscardsLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	table := NewMockOpcodeTable(ctrl)
	retn, err := instructions.Instructions.Instruction(instructions.OpCode_RET_N)
	require.NoError(t, err)
	add, err := instructions.Instructions.Instruction(instructions.OpCode_ADD)
	require.NoError(t, err)

	gomock.InOrder(
		table.EXPECT().Match(uint64(0xF00D), 2).Return(instructions.OpCode_RET_N, []uint64{}, nil),
		table.EXPECT().Instruction(instructions.OpCode_RET_N).Return(retn, nil),
		table.EXPECT().Match(uint64(0x2340), 2).Return(instructions.OpCode(0), nil, types.ErrNoMatch),
		table.EXPECT().Match(uint64(0x802340), 3).Return(instructions.OpCode_ADD, []uint64{2}, nil),
		table.EXPECT().Instruction(instructions.OpCode_ADD).Return(add, nil),
	)

	decoder, err := NewDecoder(DefaultConfig(), table)
	require.NoError(t, err)

	lines, err := decoder.Disassemble([]byte{0x0D, 0xF0, 0x40, 0x23, 0x80}, 0)
	require.ErrorIs(t, err, ErrDisassembly)
	assert.True(t, types.IsFatal(err))
	assert.Nil(t, lines)
}

func TestDecode_LogsTablesTried(t *testing.T) {
	var logs bytes.Buffer
	config := DefaultConfig()
	config.Logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	decoder, err := NewDecoder(config, nil)
	require.NoError(t, err)

	_, _, err = decoder.Decode([]byte{0x40, 0x23, 0x80}, 0)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "bits=16")
	assert.Contains(t, logs.String(), "bits=24")
	assert.Contains(t, logs.String(), "component=decoder")
}

func TestDisassemble(t *testing.T) {
	code := []byte{
		0x40, 0x23, 0x80, // add a2, a3, a4
		0x0D, 0xF0, // ret.n
		0x0F, 0x00, 0x00, // reserved
		0xF0, 0x20, 0x00, // nop
		0x0D, // truncated
	}

	lines, err := defaultDecoder(t).Disassemble(code, 0x100)
	require.NoError(t, err)
	require.Len(t, lines, 5)

	assert.Equal(t, uint64(0x100), lines[0].Address)
	assert.Equal(t, "add a2, a3, a4", lines[0].Instruction.String())
	assert.Equal(t, uint64(0x103), lines[1].Address)
	assert.Equal(t, "ret.n", lines[1].Instruction.String())

	assert.Nil(t, lines[2].Instruction)
	assert.ErrorIs(t, lines[2].Err, types.ErrNoMatch)
	assert.Equal(t, []byte{0x0F, 0x00, 0x00}, lines[2].Bytes)
	assert.Equal(t, "00000105:  0f0000    .byte 0x0f, 0x00, 0x00", lines[2].String())

	assert.Equal(t, uint64(0x108), lines[3].Address)
	assert.Equal(t, "00000108:  f02000    nop", lines[3].String())

	assert.ErrorIs(t, lines[4].Err, types.ErrTruncatedInput)
	assert.Equal(t, []byte{0x0D}, lines[4].Bytes)

	assert.Equal(t, "00000108:  f02000    NOP", lines[3].Format(strings.ToUpper))
}

func TestDecode_Concurrent(t *testing.T) {
	decoder := defaultDecoder(t)
	words := [][]byte{
		{0x40, 0x23, 0x80},
		{0x32, 0x21, 0x1F},
		{0x0D, 0xF0},
		{0x2D, 0x0A},
		{0x37, 0x92, 0xF8},
	}

	expected := make([]string, len(words))

	for i, word := range words {
		instruction, _, err := decoder.Decode(word, 0)
		require.NoError(t, err)
		expected[i] = instruction.String()
	}

	for round := 0; round < 16; round++ {
		results := iter.Map(words, func(word *[]byte) string {
			instruction, _, err := decoder.Decode(*word, 0)

			if err != nil {
				return err.Error()
			}

			return instruction.String()
		})

		assert.Equal(t, expected, results)
	}
}
