package operands

// Identifies how the semantic value of an operand is stored in its raw instruction field
type Encoding uint

const (
	// Word aligned PC-relative call offset, 18 bit field
	Encoding_CallTarget Encoding = iota
	// Signed jump offset, 18 bit field
	Encoding_JumpTarget
	// Signed branch offset, 12 bit field (BEQZ, BNEZ, BLTZ, BGEZ)
	Encoding_BranchTarget12
	// Signed branch offset, 8 bit field (all other branches)
	Encoding_BranchTarget8
	// Literal pool reference of L32R, 16 bit field
	Encoding_L32RTarget
	Encoding_Imm8
	Encoding_Imm8Sh8
	Encoding_Imm12
	Encoding_Uimm4
	Encoding_Uimm5
	Encoding_Imm1_16
	Encoding_Imm1n_15
	Encoding_Imm32n_95
	Encoding_Imm8n_7
	Encoding_Imm64n_4n
	Encoding_Shimm1_31
	Encoding_Seimm7_22
	Encoding_B4const
	Encoding_B4constu
	// Stack frame size of ENTRY, multiple of 8
	Encoding_EntryImm12
	// Base register and byte offset of 8 bit loads/stores
	Encoding_Mem8
	// Base register and offset of 16 bit loads/stores
	Encoding_Mem16
	// Base register and offset of 32 bit loads/stores
	Encoding_Mem32
	// Base register and offset of L32I.N/S32I.N
	Encoding_Mem32n

	// Number of operand encodings
	TOTAL_ENCODINGS
)

var encodingNames = map[Encoding]string{
	Encoding_CallTarget:     "call_target",
	Encoding_JumpTarget:     "jump_target",
	Encoding_BranchTarget12: "branch_target12",
	Encoding_BranchTarget8:  "branch_target8",
	Encoding_L32RTarget:     "l32r_target",
	Encoding_Imm8:           "imm8",
	Encoding_Imm8Sh8:        "imm8_sh8",
	Encoding_Imm12:          "imm12",
	Encoding_Uimm4:          "uimm4",
	Encoding_Uimm5:          "uimm5",
	Encoding_Imm1_16:        "imm1_16",
	Encoding_Imm1n_15:       "imm1n_15",
	Encoding_Imm32n_95:      "imm32n_95",
	Encoding_Imm8n_7:        "imm8n_7",
	Encoding_Imm64n_4n:      "imm64n_4n",
	Encoding_Shimm1_31:      "shimm1_31",
	Encoding_Seimm7_22:      "seimm7_22",
	Encoding_B4const:        "b4const",
	Encoding_B4constu:       "b4constu",
	Encoding_EntryImm12:     "entry_imm12",
	Encoding_Mem8:           "mem8",
	Encoding_Mem16:          "mem16",
	Encoding_Mem32:          "mem32",
	Encoding_Mem32n:         "mem32n",
}

func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}

	panic("unreachable")
}

// Returns true if the field packs a base register together with an offset
func (e Encoding) IsMemory() bool {
	switch e {
	case Encoding_Mem8, Encoding_Mem16, Encoding_Mem32, Encoding_Mem32n:
		return true
	}

	return false
}

// Returns true if the semantic value is an offset from the instruction address
func (e Encoding) IsPCRelative() bool {
	switch e {
	case Encoding_CallTarget, Encoding_BranchTarget12, Encoding_BranchTarget8, Encoding_L32RTarget:
		return true
	}

	return false
}

// Returns true if the operand may be left unresolved at encode time and patched through a fixup
func (e Encoding) AcceptsSymbol() bool {
	switch e {
	case Encoding_CallTarget, Encoding_JumpTarget, Encoding_BranchTarget12, Encoding_BranchTarget8, Encoding_L32RTarget:
		return true
	}

	return false
}

// Returns the width of the raw instruction field
func (e Encoding) FieldBits() int {
	switch e {
	case Encoding_CallTarget, Encoding_JumpTarget:
		return 18
	case Encoding_L32RTarget:
		return 16
	case Encoding_BranchTarget12, Encoding_Imm12, Encoding_EntryImm12, Encoding_Mem8, Encoding_Mem16, Encoding_Mem32:
		return 12
	case Encoding_BranchTarget8, Encoding_Imm8, Encoding_Imm8Sh8, Encoding_Mem32n:
		return 8
	case Encoding_Imm32n_95:
		return 7
	case Encoding_Uimm5, Encoding_Shimm1_31:
		return 5
	case Encoding_Uimm4, Encoding_Imm1_16, Encoding_Imm1n_15, Encoding_Imm8n_7, Encoding_Imm64n_4n, Encoding_Seimm7_22, Encoding_B4const, Encoding_B4constu:
		return 4
	}

	panic("unreachable")
}
