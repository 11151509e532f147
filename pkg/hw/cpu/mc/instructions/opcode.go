package instructions

// Represents an instruction opcode
type OpCode uint

const (
	// Core ALU
	OpCode_ADD OpCode = iota
	OpCode_SUB
	OpCode_AND
	OpCode_OR
	OpCode_XOR
	OpCode_NEG
	OpCode_ABS
	OpCode_ADDI
	OpCode_ADDMI
	OpCode_MOVI

	// Loads and stores
	OpCode_L8UI
	OpCode_L16UI
	OpCode_L16SI
	OpCode_L32I
	OpCode_S8I
	OpCode_S16I
	OpCode_S32I
	OpCode_S32C1I
	OpCode_L32R

	// Calls, jumps and returns
	OpCode_CALL0
	OpCode_CALL4
	OpCode_CALL8
	OpCode_CALL12
	OpCode_CALLX0
	OpCode_CALLX4
	OpCode_CALLX8
	OpCode_CALLX12
	OpCode_J
	OpCode_JX
	OpCode_RET
	OpCode_RETW
	OpCode_ENTRY

	// Branches
	OpCode_BEQZ
	OpCode_BNEZ
	OpCode_BLTZ
	OpCode_BGEZ
	OpCode_BEQI
	OpCode_BNEI
	OpCode_BLTI
	OpCode_BGEI
	OpCode_BLTUI
	OpCode_BGEUI
	OpCode_BNONE
	OpCode_BEQ
	OpCode_BLT
	OpCode_BLTU
	OpCode_BALL
	OpCode_BBC
	OpCode_BBCI
	OpCode_BANY
	OpCode_BNE
	OpCode_BGE
	OpCode_BGEU
	OpCode_BNALL
	OpCode_BBS
	OpCode_BBSI
	OpCode_BF
	OpCode_BT

	// Shifts
	OpCode_SLLI
	OpCode_SRAI
	OpCode_SRLI
	OpCode_SRC
	OpCode_SRL
	OpCode_SLL
	OpCode_SRA
	OpCode_EXTUI
	OpCode_SSR
	OpCode_SSL
	OpCode_SSA8L
	OpCode_SSA8B
	OpCode_SSAI

	// Optional ALU extensions
	OpCode_NSA
	OpCode_NSAU
	OpCode_MULL
	OpCode_MULUH
	OpCode_MULSH
	OpCode_QUOU
	OpCode_QUOS
	OpCode_REMU
	OpCode_REMS
	OpCode_SEXT
	OpCode_CLAMPS

	// Special and user registers, windowed registers
	OpCode_RSR
	OpCode_WSR
	OpCode_XSR
	OpCode_RUR
	OpCode_WUR
	OpCode_L32E
	OpCode_S32E
	OpCode_MOVSP
	OpCode_ROTW

	// Single precision float and boolean registers
	OpCode_ADD_S
	OpCode_SUB_S
	OpCode_MUL_S
	OpCode_LSI
	OpCode_SSI
	OpCode_ANDB
	OpCode_ORB
	OpCode_XORB

	// Debug and synchronization
	OpCode_BREAK
	OpCode_NOP
	OpCode_MEMW
	OpCode_ISYNC
	OpCode_RSYNC
	OpCode_ESYNC
	OpCode_DSYNC
	OpCode_EXTW
	OpCode_ILL

	// Code density (16 bit) instructions
	OpCode_L32I_N
	OpCode_S32I_N
	OpCode_ADD_N
	OpCode_ADDI_N
	OpCode_MOVI_N
	OpCode_MOV_N
	OpCode_RET_N
	OpCode_RETW_N
	OpCode_BREAK_N
	OpCode_NOP_N
	OpCode_ILL_N

	// Total opcodes implemented
	TOTAL_OPCODES
)

// Returns the mnemonic of the instruction opcode
func (op OpCode) String() string {
	return Opcodes.Mnemonic(op)
}
