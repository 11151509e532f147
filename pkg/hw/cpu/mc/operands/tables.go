package operands

import (
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
	"github.com/Manu343726/xtensa/pkg/utils"
)

// Constants available to signed immediate branches (BEQI, BNEI, BLTI, BGEI)
var B4constTable = [16]int64{-1, 1, 2, 3, 4, 5, 6, 7, 8, 10, 12, 16, 32, 64, 128, 256}

// Constants available to unsigned immediate branches (BLTUI, BGEUI)
var B4constuTable = [16]int64{32768, 65536, 2, 3, 4, 5, 6, 7, 8, 10, 12, 16, 32, 64, 128, 256}

func tableFor(e Encoding) *[16]int64 {
	switch e {
	case Encoding_B4const:
		return &B4constTable
	case Encoding_B4constu:
		return &B4constuTable
	}

	panic("unreachable")
}

// Decodes b4const and b4constu fields
func DecodeTableConstant(e Encoding, raw uint64) (int64, error) {
	if err := checkRaw(e, raw); err != nil {
		return 0, err
	}

	return tableFor(e)[raw], nil
}

// Encodes b4const and b4constu fields. Values missing from the table are rejected
func EncodeTableConstant(e Encoding, imm int64) (uint64, error) {
	for i, value := range tableFor(e) {
		if value == imm {
			return uint64(i), nil
		}
	}

	return 0, utils.MakeError(types.ErrNotInTable, "%v: %v", e, imm)
}
