package operands

import (
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
	"github.com/Manu343726/xtensa/pkg/utils"
)

func checkRaw(e Encoding, raw uint64) error {
	if !utils.IsUInt(e.FieldBits(), raw) {
		return utils.MakeError(types.ErrOutOfRange, "%v: raw field %#x does not fit in %v bits", e, raw, e.FieldBits())
	}

	return nil
}

func checkRange(e Encoding, imm int64) error {
	min, max := e.Bounds()

	if imm < min || imm > max {
		return utils.MakeError(types.ErrOutOfRange, "%v: %v not in [%v, %v]", e, imm, min, max)
	}

	return nil
}

func checkAlignment(e Encoding, imm int64, alignment int64) error {
	if imm&(alignment-1) != 0 {
		return utils.MakeError(types.ErrMisaligned, "%v: %v is not a multiple of %v", e, imm, alignment)
	}

	return nil
}

// Returns the smallest and largest legal semantic values of an immediate encoding.
// Values in between may still be illegal (alignment, constant tables, holes)
func (e Encoding) Bounds() (min int64, max int64) {
	switch e {
	case Encoding_CallTarget:
		return -(1 << 19), (1 << 19) - 4
	case Encoding_JumpTarget:
		return -(1 << 17), (1 << 17) - 1
	case Encoding_BranchTarget12, Encoding_Imm12:
		return -2048, 2047
	case Encoding_BranchTarget8, Encoding_Imm8:
		return -128, 127
	case Encoding_L32RTarget:
		return -(1 << 16), (1 << 16) - 1
	case Encoding_Imm8Sh8:
		return -32768, 32512
	case Encoding_Uimm4:
		return 0, 15
	case Encoding_Uimm5:
		return 0, 31
	case Encoding_Imm1_16:
		return 1, 16
	case Encoding_Imm1n_15:
		return -1, 15
	case Encoding_Imm32n_95:
		return -32, 95
	case Encoding_Imm8n_7:
		return -8, 7
	case Encoding_Imm64n_4n:
		return -64, -4
	case Encoding_Shimm1_31:
		return 1, 31
	case Encoding_Seimm7_22:
		return 7, 22
	case Encoding_B4const:
		return -1, 256
	case Encoding_B4constu:
		return 2, 65536
	case Encoding_EntryImm12:
		return 0, 32760
	case Encoding_Mem8:
		return 0, 255
	case Encoding_Mem16:
		return 0, 510
	case Encoding_Mem32:
		return 0, 1020
	case Encoding_Mem32n:
		return 0, 60
	}

	panic("unreachable")
}

// Call targets are word aligned: the field stores the offset divided by 4
func DecodeCallTarget(raw uint64) (int64, error) {
	if err := checkRaw(Encoding_CallTarget, raw); err != nil {
		return 0, err
	}

	return utils.SignExtend(raw<<2, 20), nil
}

func EncodeCallTarget(imm int64) (uint64, error) {
	if err := checkRange(Encoding_CallTarget, imm); err != nil {
		return 0, err
	}

	if err := checkAlignment(Encoding_CallTarget, imm, 4); err != nil {
		return 0, err
	}

	return uint64(imm>>2) & utils.AllOnes[uint64](18), nil
}

func DecodeJumpTarget(raw uint64) (int64, error) {
	if err := checkRaw(Encoding_JumpTarget, raw); err != nil {
		return 0, err
	}

	return utils.SignExtend(raw, 18), nil
}

func EncodeJumpTarget(imm int64) (uint64, error) {
	if err := checkRange(Encoding_JumpTarget, imm); err != nil {
		return 0, err
	}

	return uint64(imm) & utils.AllOnes[uint64](18), nil
}

// Returns the branch offset stored in the field. The branch target is address + 4 + offset
func DecodeBranchTarget(e Encoding, raw uint64) (int64, error) {
	if err := checkRaw(e, raw); err != nil {
		return 0, err
	}

	return utils.SignExtend(raw, e.FieldBits()), nil
}

func EncodeBranchTarget(e Encoding, imm int64) (uint64, error) {
	if err := checkRange(e, imm); err != nil {
		return 0, err
	}

	return uint64(imm) & utils.AllOnes[uint64](e.FieldBits()), nil
}

// Literal loads carry the two low bits of the instruction address into the decoded value
func DecodeL32RTarget(raw uint64, address uint64) (int64, error) {
	if err := checkRaw(Encoding_L32RTarget, raw); err != nil {
		return 0, err
	}

	return utils.SignExtend((raw<<2)+0x40000+(address&0x3), 17), nil
}

// The two low bits are not checked since they may hold the low bits of the instruction address
func EncodeL32RTarget(imm int64) (uint64, error) {
	if err := checkRange(Encoding_L32RTarget, imm); err != nil {
		return 0, err
	}

	return uint64(imm>>2) & utils.AllOnes[uint64](16), nil
}

func DecodeImm8(raw uint64) (int64, error) {
	if err := checkRaw(Encoding_Imm8, raw); err != nil {
		return 0, err
	}

	return utils.SignExtend(raw, 8), nil
}

func EncodeImm8(imm int64) (uint64, error) {
	if err := checkRange(Encoding_Imm8, imm); err != nil {
		return 0, err
	}

	return uint64(imm) & 0xff, nil
}

func DecodeImm8Sh8(raw uint64) (int64, error) {
	if err := checkRaw(Encoding_Imm8Sh8, raw); err != nil {
		return 0, err
	}

	return utils.SignExtend(raw<<8, 16), nil
}

func EncodeImm8Sh8(imm int64) (uint64, error) {
	if err := checkRange(Encoding_Imm8Sh8, imm); err != nil {
		return 0, err
	}

	if err := checkAlignment(Encoding_Imm8Sh8, imm, 256); err != nil {
		return 0, err
	}

	return uint64(imm>>8) & 0xff, nil
}

func DecodeImm12(raw uint64) (int64, error) {
	if err := checkRaw(Encoding_Imm12, raw); err != nil {
		return 0, err
	}

	return utils.SignExtend(raw, 12), nil
}

func EncodeImm12(imm int64) (uint64, error) {
	if err := checkRange(Encoding_Imm12, imm); err != nil {
		return 0, err
	}

	return uint64(imm) & 0xfff, nil
}

// Decodes uimm4 and uimm5 fields
func DecodeUnsigned(e Encoding, raw uint64) (int64, error) {
	if err := checkRaw(e, raw); err != nil {
		return 0, err
	}

	return int64(raw), nil
}

// Encodes uimm4 and uimm5 fields
func EncodeUnsigned(e Encoding, imm int64) (uint64, error) {
	if err := checkRange(e, imm); err != nil {
		return 0, err
	}

	return uint64(imm), nil
}

func DecodeImm1_16(raw uint64) (int64, error) {
	if err := checkRaw(Encoding_Imm1_16, raw); err != nil {
		return 0, err
	}

	return int64(raw) + 1, nil
}

func EncodeImm1_16(imm int64) (uint64, error) {
	if err := checkRange(Encoding_Imm1_16, imm); err != nil {
		return 0, err
	}

	return uint64(imm - 1), nil
}

// Zero is not representable, its code stands for -1
func DecodeImm1n_15(raw uint64) (int64, error) {
	if err := checkRaw(Encoding_Imm1n_15, raw); err != nil {
		return 0, err
	}

	if raw == 0 {
		return -1, nil
	}

	return int64(raw), nil
}

func EncodeImm1n_15(imm int64) (uint64, error) {
	if err := checkRange(Encoding_Imm1n_15, imm); err != nil {
		return 0, err
	}

	if imm == 0 {
		return 0, utils.MakeError(types.ErrOutOfRange, "%v: 0 is not encodable", Encoding_Imm1n_15)
	}

	if imm < 0 {
		return 0, nil
	}

	return uint64(imm), nil
}

// Codes with both high bits set are negative
func DecodeImm32n_95(raw uint64) (int64, error) {
	if err := checkRaw(Encoding_Imm32n_95, raw); err != nil {
		return 0, err
	}

	if raw&0x60 == 0x60 {
		return int64(raw) | ^int64(0x1f), nil
	}

	return int64(raw), nil
}

func EncodeImm32n_95(imm int64) (uint64, error) {
	if err := checkRange(Encoding_Imm32n_95, imm); err != nil {
		return 0, err
	}

	return uint64(imm) & 0x7f, nil
}

func DecodeImm8n_7(raw uint64) (int64, error) {
	if err := checkRaw(Encoding_Imm8n_7, raw); err != nil {
		return 0, err
	}

	if raw > 7 {
		return int64(raw) - 16, nil
	}

	return int64(raw), nil
}

func EncodeImm8n_7(imm int64) (uint64, error) {
	if err := checkRange(Encoding_Imm8n_7, imm); err != nil {
		return 0, err
	}

	if imm < 0 {
		return uint64(imm + 16), nil
	}

	return uint64(imm), nil
}

func DecodeImm64n_4n(raw uint64) (int64, error) {
	if err := checkRaw(Encoding_Imm64n_4n, raw); err != nil {
		return 0, err
	}

	return int64(raw<<2) | ^int64(0x3f), nil
}

func EncodeImm64n_4n(imm int64) (uint64, error) {
	if err := checkRange(Encoding_Imm64n_4n, imm); err != nil {
		return 0, err
	}

	if err := checkAlignment(Encoding_Imm64n_4n, imm, 4); err != nil {
		return 0, err
	}

	return (uint64(imm) & 0x3f) >> 2, nil
}

// Shift amounts are stored as 32 - amount
func DecodeShimm1_31(raw uint64) (int64, error) {
	if err := checkRaw(Encoding_Shimm1_31, raw); err != nil {
		return 0, err
	}

	return 32 - int64(raw), nil
}

func EncodeShimm1_31(imm int64) (uint64, error) {
	if err := checkRange(Encoding_Shimm1_31, imm); err != nil {
		return 0, err
	}

	return uint64(32-imm) & 0x1f, nil
}

func DecodeSeimm7_22(raw uint64) (int64, error) {
	if err := checkRaw(Encoding_Seimm7_22, raw); err != nil {
		return 0, err
	}

	return int64(raw) + 7, nil
}

func EncodeSeimm7_22(imm int64) (uint64, error) {
	if err := checkRange(Encoding_Seimm7_22, imm); err != nil {
		return 0, err
	}

	return uint64(imm - 7), nil
}

// ENTRY frame sizes are stored divided by 8
func DecodeEntryImm12(raw uint64) (int64, error) {
	if err := checkRaw(Encoding_EntryImm12, raw); err != nil {
		return 0, err
	}

	return int64(raw << 3), nil
}

func EncodeEntryImm12(imm int64) (uint64, error) {
	if err := checkRange(Encoding_EntryImm12, imm); err != nil {
		return 0, err
	}

	if err := checkAlignment(Encoding_EntryImm12, imm, 8); err != nil {
		return 0, err
	}

	return uint64(imm >> 3), nil
}
