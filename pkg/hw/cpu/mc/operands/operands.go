// Package operands implements the transforms between the raw bit fields of
// Xtensa instructions and the semantic values of their operands
package operands

import (
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
	"github.com/Manu343726/xtensa/pkg/utils"
)

// Decodes the raw field of an immediate operand. The address of the instruction is only
// used by L32R targets
func DecodeImmediate(e Encoding, raw uint64, address uint64) (int64, error) {
	switch e {
	case Encoding_CallTarget:
		return DecodeCallTarget(raw)
	case Encoding_JumpTarget:
		return DecodeJumpTarget(raw)
	case Encoding_BranchTarget12, Encoding_BranchTarget8:
		return DecodeBranchTarget(e, raw)
	case Encoding_L32RTarget:
		return DecodeL32RTarget(raw, address)
	case Encoding_Imm8:
		return DecodeImm8(raw)
	case Encoding_Imm8Sh8:
		return DecodeImm8Sh8(raw)
	case Encoding_Imm12:
		return DecodeImm12(raw)
	case Encoding_Uimm4, Encoding_Uimm5:
		return DecodeUnsigned(e, raw)
	case Encoding_Imm1_16:
		return DecodeImm1_16(raw)
	case Encoding_Imm1n_15:
		return DecodeImm1n_15(raw)
	case Encoding_Imm32n_95:
		return DecodeImm32n_95(raw)
	case Encoding_Imm8n_7:
		return DecodeImm8n_7(raw)
	case Encoding_Imm64n_4n:
		return DecodeImm64n_4n(raw)
	case Encoding_Shimm1_31:
		return DecodeShimm1_31(raw)
	case Encoding_Seimm7_22:
		return DecodeSeimm7_22(raw)
	case Encoding_B4const, Encoding_B4constu:
		return DecodeTableConstant(e, raw)
	case Encoding_EntryImm12:
		return DecodeEntryImm12(raw)
	}

	return 0, utils.MakeError(types.ErrOperandShape, "%v is not an immediate operand encoding", e)
}

// Encodes the semantic value of an immediate operand into its raw field
func EncodeImmediate(e Encoding, imm int64) (uint64, error) {
	switch e {
	case Encoding_CallTarget:
		return EncodeCallTarget(imm)
	case Encoding_JumpTarget:
		return EncodeJumpTarget(imm)
	case Encoding_BranchTarget12, Encoding_BranchTarget8:
		return EncodeBranchTarget(e, imm)
	case Encoding_L32RTarget:
		return EncodeL32RTarget(imm)
	case Encoding_Imm8:
		return EncodeImm8(imm)
	case Encoding_Imm8Sh8:
		return EncodeImm8Sh8(imm)
	case Encoding_Imm12:
		return EncodeImm12(imm)
	case Encoding_Uimm4, Encoding_Uimm5:
		return EncodeUnsigned(e, imm)
	case Encoding_Imm1_16:
		return EncodeImm1_16(imm)
	case Encoding_Imm1n_15:
		return EncodeImm1n_15(imm)
	case Encoding_Imm32n_95:
		return EncodeImm32n_95(imm)
	case Encoding_Imm8n_7:
		return EncodeImm8n_7(imm)
	case Encoding_Imm64n_4n:
		return EncodeImm64n_4n(imm)
	case Encoding_Shimm1_31:
		return EncodeShimm1_31(imm)
	case Encoding_Seimm7_22:
		return EncodeSeimm7_22(imm)
	case Encoding_B4const, Encoding_B4constu:
		return EncodeTableConstant(e, imm)
	case Encoding_EntryImm12:
		return EncodeEntryImm12(imm)
	}

	return 0, utils.MakeError(types.ErrOperandShape, "%v is not an immediate operand encoding", e)
}

// Returns the absolute target address of a PC-relative operand given its decoded value
func Target(e Encoding, value int64, address uint64) uint64 {
	switch e {
	case Encoding_CallTarget:
		return (address &^ 0x3) + 4 + uint64(value)
	case Encoding_BranchTarget12, Encoding_BranchTarget8, Encoding_JumpTarget:
		return address + 4 + uint64(value)
	case Encoding_L32RTarget:
		return uint64(value)
	}

	return uint64(value)
}
