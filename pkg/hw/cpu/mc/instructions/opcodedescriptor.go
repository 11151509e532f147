package instructions

import (
	"fmt"
	"math/bits"

	"github.com/Manu343726/xtensa/pkg/utils"
)

// Contains the fixed bits identifying an instruction opcode
type OpCodeDescriptor struct {
	OpCode   OpCode
	Mnemonic string
	// Instruction size in bytes (2 or 3)
	Size int
	// Bits of the instruction word that identify the opcode
	Mask uint64
	// Value of the masked bits
	Match uint64
}

func (d *OpCodeDescriptor) String() string {
	return fmt.Sprintf("%v (size: %v, match: %v, mask: %v)", d.Mnemonic, d.Size, utils.FormatUintHex(d.Match, d.Size*2), utils.FormatUintHex(d.Mask, d.Size*2))
}

// Returns the number of bits of the instruction word
func (d *OpCodeDescriptor) EncodingBits() int {
	return utils.Bits(d.Size)
}

// Returns the number of fixed bits. Used to try more specific encodings first
func (d *OpCodeDescriptor) FixedBits() int {
	return bits.OnesCount64(d.Mask)
}

// Returns true if the instruction word has this opcode
func (d *OpCodeDescriptor) Matches(word uint64) bool {
	return word&d.Mask == d.Match
}
