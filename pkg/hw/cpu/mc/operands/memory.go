package operands

import (
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
	"github.com/Manu343726/xtensa/pkg/utils"
)

// Memory operands pack the base address register number in the low 4 bits
// and the scaled offset above it
const memRegisterBits = 4

func memoryScale(e Encoding) int64 {
	switch e {
	case Encoding_Mem8:
		return 1
	case Encoding_Mem16:
		return 2
	case Encoding_Mem32, Encoding_Mem32n:
		return 4
	}

	panic("unreachable")
}

// Splits a raw memory field into the base register number and the byte offset
func DecodeMemory(e Encoding, raw uint64) (register uint64, offset int64, err error) {
	if !e.IsMemory() {
		return 0, 0, utils.MakeError(types.ErrOperandShape, "%v is not a memory operand encoding", e)
	}

	if err := checkRaw(e, raw); err != nil {
		return 0, 0, err
	}

	register = raw & utils.AllOnes[uint64](memRegisterBits)

	switch e {
	case Encoding_Mem8:
		offset = int64((raw >> 4) & 0xff)
	case Encoding_Mem16:
		offset = int64((raw >> 3) & 0x1fe)
	case Encoding_Mem32:
		offset = int64((raw >> 2) & 0x3fc)
	case Encoding_Mem32n:
		offset = int64((raw >> 2) & 0x3c)
	}

	return register, offset, nil
}

// Packs a base register number and a byte offset into a raw memory field
func EncodeMemory(e Encoding, register uint64, offset int64) (uint64, error) {
	if !e.IsMemory() {
		return 0, utils.MakeError(types.ErrOperandShape, "%v is not a memory operand encoding", e)
	}

	if !utils.IsUInt(memRegisterBits, register) {
		return 0, utils.MakeError(types.ErrOutOfRange, "%v: base register number %v", e, register)
	}

	scale := memoryScale(e)

	if err := checkRange(e, offset); err != nil {
		return 0, err
	}

	if err := checkAlignment(e, offset, scale); err != nil {
		return 0, err
	}

	return uint64(offset/scale)<<memRegisterBits | register, nil
}
