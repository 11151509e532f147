package instructions

import (
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/operands"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/registers"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
)

// Operand fields shared by most instruction formats
var (
	fieldT    = BitField{Position: 4, Width: 4}
	fieldS    = BitField{Position: 8, Width: 4}
	fieldR    = BitField{Position: 12, Width: 4}
	fieldImm8 = BitField{Position: 16, Width: 8}
	fieldOp2  = BitField{Position: 20, Width: 4}
)

func bit(position int) BitField {
	return BitField{Position: position, Width: 1}
}

func ar(role OperandRole, field BitField, description string) *OperandDescriptor {
	return RegisterOperandDescriptor(registers.RegisterClass_AR, OperandDescriptor{
		Role:        role,
		Fields:      []BitField{field},
		Description: description,
	})
}

func fr(role OperandRole, field BitField, description string) *OperandDescriptor {
	return RegisterOperandDescriptor(registers.RegisterClass_FPR, OperandDescriptor{
		Role:        role,
		Fields:      []BitField{field},
		Description: description,
	})
}

func br(role OperandRole, field BitField, description string) *OperandDescriptor {
	return RegisterOperandDescriptor(registers.RegisterClass_BR, OperandDescriptor{
		Role:        role,
		Fields:      []BitField{field},
		Description: description,
	})
}

func special(role OperandRole, field BitField) *OperandDescriptor {
	return RegisterOperandDescriptor(registers.RegisterClass_SR, OperandDescriptor{
		Role:        role,
		Fields:      []BitField{field},
		Description: "special register",
	})
}

func user(role OperandRole, field BitField) *OperandDescriptor {
	return RegisterOperandDescriptor(registers.RegisterClass_UR, OperandDescriptor{
		Role:        role,
		Fields:      []BitField{field},
		Description: "user register",
	})
}

func imm(encoding operands.Encoding, description string, fields ...BitField) *OperandDescriptor {
	return ImmediateOperandDescriptor(encoding, OperandDescriptor{
		Role:        OperandRole_Source,
		Fields:      fields,
		Description: description,
	})
}

// Base address register in s and scaled offset in the 8 bit immediate
func mem(encoding operands.Encoding) *OperandDescriptor {
	return imm(encoding, "base address register and byte offset", fieldS, fieldImm8)
}

func needs(features ...types.Feature) types.FeatureSet {
	return types.MakeFeatureSet(features...)
}

func instruction(op OpCode, size int, mask uint64, match uint64, features types.FeatureSet, description string, operands ...*OperandDescriptor) *InstructionDescriptor {
	opcode := Opcodes.Descriptor(op)
	opcode.Size = size
	opcode.Mask = mask
	opcode.Match = match

	return &InstructionDescriptor{
		OpCode:      opcode,
		Operands:    operands,
		Description: description,
		Features:    features,
	}
}

// 24 bit instruction
func wide(op OpCode, mask uint64, match uint64, features types.FeatureSet, description string, operands ...*OperandDescriptor) *InstructionDescriptor {
	return instruction(op, 3, mask, match, features, description, operands...)
}

// 16 bit instruction of the code density option
func narrow(op OpCode, mask uint64, match uint64, features types.FeatureSet, description string, operands ...*OperandDescriptor) *InstructionDescriptor {
	return instruction(op, 2, mask, match, features|needs(types.Feature_Density), description, operands...)
}

// RRR format with three address registers
func rrr(op OpCode, match uint64, features types.FeatureSet, description string) *InstructionDescriptor {
	return wide(op, 0xFF000F, match, features, description,
		ar(OperandRole_Destination, fieldR, "destination register"),
		ar(OperandRole_Source, fieldS, "first source register"),
		ar(OperandRole_Source, fieldT, "second source register"),
	)
}

// RRI8 loads and stores
func load(op OpCode, match uint64, encoding operands.Encoding, description string) *InstructionDescriptor {
	return wide(op, 0x00F00F, match, 0, description,
		ar(OperandRole_Destination, fieldT, "destination register"),
		mem(encoding),
	)
}

func store(op OpCode, match uint64, encoding operands.Encoding, features types.FeatureSet, description string) *InstructionDescriptor {
	return wide(op, 0x00F00F, match, features, description,
		ar(OperandRole_Source, fieldT, "source register"),
		mem(encoding),
	)
}

// BRI12 branches comparing a register against zero
func branchZero(op OpCode, match uint64, description string) *InstructionDescriptor {
	return wide(op, 0x0000FF, match, 0, description,
		ar(OperandRole_Source, fieldS, "tested register"),
		imm(operands.Encoding_BranchTarget12, "branch offset", BitField{Position: 12, Width: 12}),
	)
}

// BRI8 branches comparing a register against a table constant
func branchConstant(op OpCode, match uint64, table operands.Encoding, description string) *InstructionDescriptor {
	return wide(op, 0x0000FF, match, 0, description,
		ar(OperandRole_Source, fieldS, "tested register"),
		imm(table, "constant", fieldR),
		imm(operands.Encoding_BranchTarget8, "branch offset", fieldImm8),
	)
}

// RRI8 branches comparing two registers
func branchRegisters(op OpCode, match uint64, description string) *InstructionDescriptor {
	return wide(op, 0x00F00F, match, 0, description,
		ar(OperandRole_Source, fieldS, "first tested register"),
		ar(OperandRole_Source, fieldT, "second tested register"),
		imm(operands.Encoding_BranchTarget8, "branch offset", fieldImm8),
	)
}

// RRI8 branches testing a bit selected by a constant
func branchBit(op OpCode, match uint64, description string) *InstructionDescriptor {
	return wide(op, 0x00E00F, match, 0, description,
		ar(OperandRole_Source, fieldS, "tested register"),
		imm(operands.Encoding_Uimm5, "bit index", fieldT, bit(12)),
		imm(operands.Encoding_BranchTarget8, "branch offset", fieldImm8),
	)
}

// BRI8 branches on a boolean register
func branchBoolean(op OpCode, match uint64, description string) *InstructionDescriptor {
	return wide(op, 0x00F0FF, match, needs(types.Feature_Boolean), description,
		br(OperandRole_Source, fieldS, "tested boolean register"),
		imm(operands.Encoding_BranchTarget8, "branch offset", fieldImm8),
	)
}

func call(op OpCode, match uint64, features types.FeatureSet, description string) *InstructionDescriptor {
	return wide(op, 0x00003F, match, features, description,
		imm(operands.Encoding_CallTarget, "word offset of the callee", BitField{Position: 6, Width: 18}),
	)
}

func callIndirect(op OpCode, match uint64, features types.FeatureSet, description string) *InstructionDescriptor {
	return wide(op, 0xFFF0FF, match, features, description,
		ar(OperandRole_Source, fieldS, "target address register"),
	)
}

// Instructions without operands
func fixed(op OpCode, match uint64, features types.FeatureSet, description string) *InstructionDescriptor {
	return wide(op, 0xFFFFFF, match, features, description)
}

func shiftAmount(op OpCode, match uint64, description string) *InstructionDescriptor {
	return wide(op, 0xFFF0FF, match, 0, description,
		ar(OperandRole_Source, fieldS, "shift amount register"),
	)
}

func rsr(op OpCode, match uint64, role OperandRole, description string) *InstructionDescriptor {
	registerRole := OperandRole_Source

	switch role {
	case OperandRole_Source:
		registerRole = OperandRole_Destination
	case OperandRole_SourceDestination:
		registerRole = OperandRole_SourceDestination
	}

	return wide(op, 0xFF000F, match, 0, description,
		ar(registerRole, fieldT, "address register"),
		special(role, BitField{Position: 8, Width: 8}),
	)
}

func float(op OpCode, match uint64, description string) *InstructionDescriptor {
	return wide(op, 0xFF000F, match, needs(types.Feature_SingleFloat), description,
		fr(OperandRole_Destination, fieldR, "destination register"),
		fr(OperandRole_Source, fieldS, "first source register"),
		fr(OperandRole_Source, fieldT, "second source register"),
	)
}

func boolean(op OpCode, match uint64, description string) *InstructionDescriptor {
	return wide(op, 0xFF000F, match, needs(types.Feature_Boolean), description,
		br(OperandRole_Destination, fieldR, "destination register"),
		br(OperandRole_Source, fieldS, "first source register"),
		br(OperandRole_Source, fieldT, "second source register"),
	)
}

func barrier(op OpCode, match uint64, description string) *InstructionDescriptor {
	return fixed(op, match, 0, description)
}

var Instructions InstructionsDescriptor = NewInstructionsDescriptor([]*InstructionDescriptor{
	rrr(OpCode_ADD, 0x800000, 0, "Adds two registers"),
	rrr(OpCode_SUB, 0xC00000, 0, "Substracts the second source register from the first"),
	rrr(OpCode_AND, 0x100000, 0, "Bitwise and of two registers"),
	rrr(OpCode_OR, 0x200000, 0, "Bitwise or of two registers"),
	rrr(OpCode_XOR, 0x300000, 0, "Bitwise exclusive or of two registers"),
	wide(OpCode_NEG, 0xFF0F0F, 0x600000, 0, "Two's complement negation",
		ar(OperandRole_Destination, fieldR, "destination register"),
		ar(OperandRole_Source, fieldT, "source register"),
	),
	wide(OpCode_ABS, 0xFF0F0F, 0x600100, 0, "Absolute value",
		ar(OperandRole_Destination, fieldR, "destination register"),
		ar(OperandRole_Source, fieldT, "source register"),
	),
	wide(OpCode_ADDI, 0x00F00F, 0x00C002, 0, "Adds a signed 8 bit constant to a register",
		ar(OperandRole_Destination, fieldT, "destination register"),
		ar(OperandRole_Source, fieldS, "source register"),
		imm(operands.Encoding_Imm8, "constant", fieldImm8),
	),
	wide(OpCode_ADDMI, 0x00F00F, 0x00D002, 0, "Adds a signed 8 bit constant shifted left by 8 to a register",
		ar(OperandRole_Destination, fieldT, "destination register"),
		ar(OperandRole_Source, fieldS, "source register"),
		imm(operands.Encoding_Imm8Sh8, "constant, multiple of 256", fieldImm8),
	),
	wide(OpCode_MOVI, 0x00F00F, 0x00A002, 0, "Loads a signed 12 bit constant into a register",
		ar(OperandRole_Destination, fieldT, "destination register"),
		imm(operands.Encoding_Imm12, "constant", fieldImm8, fieldS),
	),

	load(OpCode_L8UI, 0x000002, operands.Encoding_Mem8, "Loads a zero extended byte"),
	load(OpCode_L16UI, 0x001002, operands.Encoding_Mem16, "Loads a zero extended halfword"),
	load(OpCode_L16SI, 0x009002, operands.Encoding_Mem16, "Loads a sign extended halfword"),
	load(OpCode_L32I, 0x002002, operands.Encoding_Mem32, "Loads a word"),
	store(OpCode_S8I, 0x004002, operands.Encoding_Mem8, 0, "Stores the least significant byte of a register"),
	store(OpCode_S16I, 0x005002, operands.Encoding_Mem16, 0, "Stores the least significant halfword of a register"),
	store(OpCode_S32I, 0x006002, operands.Encoding_Mem32, 0, "Stores a word"),
	store(OpCode_S32C1I, 0x00E002, operands.Encoding_Mem32, needs(types.Feature_S32C1I), "Stores a word if memory holds the value of SCOMPARE1"),
	wide(OpCode_L32R, 0x00000F, 0x000001, 0, "Loads a word from the literal pool",
		ar(OperandRole_Destination, fieldT, "destination register"),
		imm(operands.Encoding_L32RTarget, "literal offset", BitField{Position: 8, Width: 16}),
	),

	call(OpCode_CALL0, 0x000005, 0, "Calls a subroutine without rotating the register window"),
	call(OpCode_CALL4, 0x000015, needs(types.Feature_Windowed), "Calls a subroutine rotating the register window by 4"),
	call(OpCode_CALL8, 0x000025, needs(types.Feature_Windowed), "Calls a subroutine rotating the register window by 8"),
	call(OpCode_CALL12, 0x000035, needs(types.Feature_Windowed), "Calls a subroutine rotating the register window by 12"),
	callIndirect(OpCode_CALLX0, 0x0000C0, 0, "Calls the subroutine at the address held in a register"),
	callIndirect(OpCode_CALLX4, 0x0000D0, needs(types.Feature_Windowed), "Calls the subroutine at the address held in a register rotating the window by 4"),
	callIndirect(OpCode_CALLX8, 0x0000E0, needs(types.Feature_Windowed), "Calls the subroutine at the address held in a register rotating the window by 8"),
	callIndirect(OpCode_CALLX12, 0x0000F0, needs(types.Feature_Windowed), "Calls the subroutine at the address held in a register rotating the window by 12"),
	wide(OpCode_J, 0x00003F, 0x000006, 0, "Unconditional jump",
		imm(operands.Encoding_JumpTarget, "jump offset", BitField{Position: 6, Width: 18}),
	),
	callIndirect(OpCode_JX, 0x0000A0, 0, "Jumps to the address held in a register"),
	fixed(OpCode_RET, 0x000080, 0, "Returns from a CALL0 subroutine"),
	fixed(OpCode_RETW, 0x000090, needs(types.Feature_Windowed), "Returns from a windowed subroutine"),
	wide(OpCode_ENTRY, 0x0000FF, 0x000036, needs(types.Feature_Windowed), "Allocates the stack frame of a windowed subroutine",
		ar(OperandRole_SourceDestination, fieldS, "stack pointer"),
		imm(operands.Encoding_EntryImm12, "frame size in bytes", BitField{Position: 12, Width: 12}),
	),

	branchZero(OpCode_BEQZ, 0x000016, "Branches if the register is zero"),
	branchZero(OpCode_BNEZ, 0x000056, "Branches if the register is not zero"),
	branchZero(OpCode_BLTZ, 0x000096, "Branches if the register is negative"),
	branchZero(OpCode_BGEZ, 0x0000D6, "Branches if the register is zero or positive"),
	branchConstant(OpCode_BEQI, 0x000026, operands.Encoding_B4const, "Branches if the register equals the constant"),
	branchConstant(OpCode_BNEI, 0x000066, operands.Encoding_B4const, "Branches if the register does not equal the constant"),
	branchConstant(OpCode_BLTI, 0x0000A6, operands.Encoding_B4const, "Branches if the register is less than the constant"),
	branchConstant(OpCode_BGEI, 0x0000E6, operands.Encoding_B4const, "Branches if the register is greater or equal than the constant"),
	branchConstant(OpCode_BLTUI, 0x0000B6, operands.Encoding_B4constu, "Branches if the register is less than the constant, unsigned"),
	branchConstant(OpCode_BGEUI, 0x0000F6, operands.Encoding_B4constu, "Branches if the register is greater or equal than the constant, unsigned"),
	branchRegisters(OpCode_BNONE, 0x000007, "Branches if no bit of the mask is set"),
	branchRegisters(OpCode_BEQ, 0x001007, "Branches if both registers are equal"),
	branchRegisters(OpCode_BLT, 0x002007, "Branches if the first register is less than the second"),
	branchRegisters(OpCode_BLTU, 0x003007, "Branches if the first register is less than the second, unsigned"),
	branchRegisters(OpCode_BALL, 0x004007, "Branches if all bits of the mask are set"),
	branchRegisters(OpCode_BBC, 0x005007, "Branches if the bit selected by the second register is clear"),
	branchBit(OpCode_BBCI, 0x006007, "Branches if the bit selected by the constant is clear"),
	branchRegisters(OpCode_BANY, 0x008007, "Branches if any bit of the mask is set"),
	branchRegisters(OpCode_BNE, 0x009007, "Branches if the registers are not equal"),
	branchRegisters(OpCode_BGE, 0x00A007, "Branches if the first register is greater or equal than the second"),
	branchRegisters(OpCode_BGEU, 0x00B007, "Branches if the first register is greater or equal than the second, unsigned"),
	branchRegisters(OpCode_BNALL, 0x00C007, "Branches if not all bits of the mask are set"),
	branchRegisters(OpCode_BBS, 0x00D007, "Branches if the bit selected by the second register is set"),
	branchBit(OpCode_BBSI, 0x00E007, "Branches if the bit selected by the constant is set"),
	branchBoolean(OpCode_BF, 0x000076, "Branches if the boolean register is false"),
	branchBoolean(OpCode_BT, 0x001076, "Branches if the boolean register is true"),

	wide(OpCode_SLLI, 0xEF000F, 0x010000, 0, "Shifts left by a constant",
		ar(OperandRole_Destination, fieldR, "destination register"),
		ar(OperandRole_Source, fieldS, "source register"),
		imm(operands.Encoding_Shimm1_31, "shift amount", fieldT, bit(20)),
	),
	wide(OpCode_SRAI, 0xEF000F, 0x210000, 0, "Arithmetic shift right by a constant",
		ar(OperandRole_Destination, fieldR, "destination register"),
		ar(OperandRole_Source, fieldT, "source register"),
		imm(operands.Encoding_Uimm5, "shift amount", fieldS, bit(20)),
	),
	wide(OpCode_SRLI, 0xFF000F, 0x410000, 0, "Logical shift right by a constant",
		ar(OperandRole_Destination, fieldR, "destination register"),
		ar(OperandRole_Source, fieldT, "source register"),
		imm(operands.Encoding_Uimm4, "shift amount", fieldS),
	),
	rrr(OpCode_SRC, 0x810000, 0, "Funnel shift right of the register pair by SAR"),
	wide(OpCode_SRL, 0xFF0F0F, 0x910000, 0, "Logical shift right by SAR",
		ar(OperandRole_Destination, fieldR, "destination register"),
		ar(OperandRole_Source, fieldT, "source register"),
	),
	wide(OpCode_SLL, 0xFF00FF, 0xA10000, 0, "Shift left by 32 - SAR",
		ar(OperandRole_Destination, fieldR, "destination register"),
		ar(OperandRole_Source, fieldS, "source register"),
	),
	wide(OpCode_SRA, 0xFF0F0F, 0xB10000, 0, "Arithmetic shift right by SAR",
		ar(OperandRole_Destination, fieldR, "destination register"),
		ar(OperandRole_Source, fieldT, "source register"),
	),
	wide(OpCode_EXTUI, 0x0E000F, 0x040000, 0, "Extracts an unsigned bit field",
		ar(OperandRole_Destination, fieldR, "destination register"),
		ar(OperandRole_Source, fieldT, "source register"),
		imm(operands.Encoding_Uimm5, "shift amount", fieldS, bit(16)),
		imm(operands.Encoding_Imm1_16, "field width", fieldOp2),
	),
	shiftAmount(OpCode_SSR, 0x400000, "Sets SAR for a right shift"),
	shiftAmount(OpCode_SSL, 0x401000, "Sets SAR for a left shift"),
	shiftAmount(OpCode_SSA8L, 0x402000, "Sets SAR for a little endian byte alignment"),
	shiftAmount(OpCode_SSA8B, 0x403000, "Sets SAR for a big endian byte alignment"),
	wide(OpCode_SSAI, 0xFFF0EF, 0x404000, 0, "Sets SAR to a constant",
		imm(operands.Encoding_Uimm5, "shift amount", fieldS, bit(4)),
	),

	wide(OpCode_NSA, 0xFFF00F, 0x40E000, needs(types.Feature_NSA), "Normalization shift amount, signed",
		ar(OperandRole_Destination, fieldT, "destination register"),
		ar(OperandRole_Source, fieldS, "source register"),
	),
	wide(OpCode_NSAU, 0xFFF00F, 0x40F000, needs(types.Feature_NSA), "Normalization shift amount, unsigned",
		ar(OperandRole_Destination, fieldT, "destination register"),
		ar(OperandRole_Source, fieldS, "source register"),
	),
	rrr(OpCode_MULL, 0x820000, needs(types.Feature_Mul32), "Multiplies two registers, low 32 bits of the product"),
	rrr(OpCode_MULUH, 0xA20000, needs(types.Feature_Mul32High), "Multiplies two registers, high 32 bits of the unsigned product"),
	rrr(OpCode_MULSH, 0xB20000, needs(types.Feature_Mul32High), "Multiplies two registers, high 32 bits of the signed product"),
	rrr(OpCode_QUOU, 0xC20000, needs(types.Feature_Div32), "Unsigned quotient"),
	rrr(OpCode_QUOS, 0xD20000, needs(types.Feature_Div32), "Signed quotient"),
	rrr(OpCode_REMU, 0xE20000, needs(types.Feature_Div32), "Unsigned remainder"),
	rrr(OpCode_REMS, 0xF20000, needs(types.Feature_Div32), "Signed remainder"),
	wide(OpCode_SEXT, 0xFF000F, 0x230000, needs(types.Feature_SEXT), "Sign extends from the given bit",
		ar(OperandRole_Destination, fieldR, "destination register"),
		ar(OperandRole_Source, fieldS, "source register"),
		imm(operands.Encoding_Seimm7_22, "sign bit index", fieldT),
	),
	wide(OpCode_CLAMPS, 0xFF000F, 0x330000, needs(types.Feature_SEXT), "Clamps to a signed range of the given bits",
		ar(OperandRole_Destination, fieldR, "destination register"),
		ar(OperandRole_Source, fieldS, "source register"),
		imm(operands.Encoding_Seimm7_22, "bits", fieldT),
	),

	rsr(OpCode_RSR, 0x030000, OperandRole_Source, "Reads a special register"),
	rsr(OpCode_WSR, 0x130000, OperandRole_Destination, "Writes a special register"),
	rsr(OpCode_XSR, 0x610000, OperandRole_SourceDestination, "Swaps a special register with an address register"),
	wide(OpCode_RUR, 0xFF000F, 0xE30000, needs(types.Feature_THREADPTR), "Reads a user register",
		ar(OperandRole_Destination, fieldR, "destination register"),
		user(OperandRole_Source, BitField{Position: 4, Width: 8}),
	),
	wide(OpCode_WUR, 0xFF000F, 0xF30000, needs(types.Feature_THREADPTR), "Writes a user register",
		ar(OperandRole_Source, fieldT, "source register"),
		user(OperandRole_Destination, BitField{Position: 8, Width: 8}),
	),
	wide(OpCode_L32E, 0xFF000F, 0x090000, needs(types.Feature_Windowed), "Loads a word for window overflow and underflow handlers",
		ar(OperandRole_Destination, fieldT, "destination register"),
		ar(OperandRole_Source, fieldS, "base address register"),
		imm(operands.Encoding_Imm64n_4n, "negative offset", fieldR),
	),
	wide(OpCode_S32E, 0xFF000F, 0x490000, needs(types.Feature_Windowed), "Stores a word for window overflow and underflow handlers",
		ar(OperandRole_Source, fieldT, "source register"),
		ar(OperandRole_Source, fieldS, "base address register"),
		imm(operands.Encoding_Imm64n_4n, "negative offset", fieldR),
	),
	wide(OpCode_MOVSP, 0xFFF00F, 0x001000, needs(types.Feature_Windowed), "Moves a value into the stack pointer",
		ar(OperandRole_Destination, fieldT, "destination register"),
		ar(OperandRole_Source, fieldS, "source register"),
	),
	wide(OpCode_ROTW, 0xFFFF0F, 0x408000, needs(types.Feature_Windowed), "Rotates the register window",
		imm(operands.Encoding_Imm8n_7, "rotation in units of 4 registers", fieldT),
	),

	float(OpCode_ADD_S, 0x0A0000, "Adds two single precision registers"),
	float(OpCode_SUB_S, 0x1A0000, "Substracts two single precision registers"),
	float(OpCode_MUL_S, 0x2A0000, "Multiplies two single precision registers"),
	wide(OpCode_LSI, 0x00F00F, 0x000003, needs(types.Feature_SingleFloat), "Loads a single precision register",
		fr(OperandRole_Destination, fieldT, "destination register"),
		mem(operands.Encoding_Mem32),
	),
	wide(OpCode_SSI, 0x00F00F, 0x004003, needs(types.Feature_SingleFloat), "Stores a single precision register",
		fr(OperandRole_Source, fieldT, "source register"),
		mem(operands.Encoding_Mem32),
	),
	boolean(OpCode_ANDB, 0x020000, "Boolean and"),
	boolean(OpCode_ORB, 0x220000, "Boolean or"),
	boolean(OpCode_XORB, 0x420000, "Boolean exclusive or"),

	wide(OpCode_BREAK, 0xFFF00F, 0x004000, needs(types.Feature_Debug), "Raises a debug exception",
		imm(operands.Encoding_Uimm4, "first break code", fieldS),
		imm(operands.Encoding_Uimm4, "second break code", fieldT),
	),
	barrier(OpCode_NOP, 0x0020F0, "No operation"),
	barrier(OpCode_MEMW, 0x0020C0, "Orders memory accesses"),
	barrier(OpCode_ISYNC, 0x002000, "Instruction fetch synchronization"),
	barrier(OpCode_RSYNC, 0x002010, "Register read synchronization"),
	barrier(OpCode_ESYNC, 0x002020, "Execute synchronization"),
	barrier(OpCode_DSYNC, 0x002030, "Load and store synchronization"),
	barrier(OpCode_EXTW, 0x0020D0, "Waits for external effects of previous instructions"),
	fixed(OpCode_ILL, 0x000000, 0, "Raises an illegal instruction exception"),

	narrow(OpCode_L32I_N, 0x000F, 0x0008, 0, "Loads a word, compact form",
		ar(OperandRole_Destination, fieldT, "destination register"),
		imm(operands.Encoding_Mem32n, "base address register and byte offset", fieldS, fieldR),
	),
	narrow(OpCode_S32I_N, 0x000F, 0x0009, 0, "Stores a word, compact form",
		ar(OperandRole_Source, fieldT, "source register"),
		imm(operands.Encoding_Mem32n, "base address register and byte offset", fieldS, fieldR),
	),
	narrow(OpCode_ADD_N, 0x000F, 0x000A, 0, "Adds two registers, compact form",
		ar(OperandRole_Destination, fieldR, "destination register"),
		ar(OperandRole_Source, fieldS, "first source register"),
		ar(OperandRole_Source, fieldT, "second source register"),
	),
	narrow(OpCode_ADDI_N, 0x000F, 0x000B, 0, "Adds a constant in -1, 1..15, compact form",
		ar(OperandRole_Destination, fieldR, "destination register"),
		ar(OperandRole_Source, fieldS, "source register"),
		imm(operands.Encoding_Imm1n_15, "constant", fieldT),
	),
	narrow(OpCode_MOVI_N, 0x008F, 0x000C, 0, "Loads a constant in -32..95, compact form",
		ar(OperandRole_Destination, fieldS, "destination register"),
		imm(operands.Encoding_Imm32n_95, "constant", fieldR, BitField{Position: 4, Width: 3}),
	),
	narrow(OpCode_MOV_N, 0xF00F, 0x000D, 0, "Copies a register, compact form",
		ar(OperandRole_Destination, fieldT, "destination register"),
		ar(OperandRole_Source, fieldS, "source register"),
	),
	narrow(OpCode_RET_N, 0xFFFF, 0xF00D, 0, "Returns from a CALL0 subroutine, compact form"),
	narrow(OpCode_RETW_N, 0xFFFF, 0xF01D, needs(types.Feature_Windowed), "Returns from a windowed subroutine, compact form"),
	narrow(OpCode_BREAK_N, 0xF0FF, 0xF02D, needs(types.Feature_Debug), "Raises a debug exception, compact form",
		imm(operands.Encoding_Uimm4, "break code", fieldS),
	),
	narrow(OpCode_NOP_N, 0xFFFF, 0xF03D, 0, "No operation, compact form"),
	narrow(OpCode_ILL_N, 0xFFFF, 0xF06D, 0, "Raises an illegal instruction exception, compact form"),
})
