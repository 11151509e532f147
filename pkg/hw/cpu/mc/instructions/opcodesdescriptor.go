package instructions

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Manu343726/xtensa/pkg/utils"
)

// Returns information about the implemented opcodes
type OpCodesDescriptor struct {
	mnemonics         map[OpCode]string
	mnemonicsToOpCode map[string]OpCode
}

// Returns an opcode descriptor without encoding information
func (d *OpCodesDescriptor) Descriptor(op OpCode) *OpCodeDescriptor {
	return &OpCodeDescriptor{
		OpCode:   op,
		Mnemonic: d.Mnemonic(op),
	}
}

// Returns all implemented opcodes sorted
func (d *OpCodesDescriptor) AllOpCodes() []OpCode {
	result := utils.Keys(d.mnemonics)
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// Number of opcodes implemented
func (d *OpCodesDescriptor) TotalOpCodes() int {
	return len(d.mnemonics)
}

// Returns the mnemonic string representation of the opcode
func (d *OpCodesDescriptor) Mnemonic(op OpCode) string {
	return d.mnemonics[op]
}

var ErrInvalidOpCode error = errors.New("invalid instruction opcode")

// Returns the opcode corresponding to the given mnemonic (case insensitive)
func (d *OpCodesDescriptor) ParseOpCode(mnemonic string) (OpCode, error) {
	if opcode, hasOpCode := d.mnemonicsToOpCode[strings.ToLower(strings.TrimSpace(mnemonic))]; hasOpCode {
		return opcode, nil
	} else {
		return 0, utils.MakeError(ErrInvalidOpCode, "'%v'", mnemonic)
	}
}

// Initialized an opcodes descriptor with all the opcodes in the given opcode -> mnemonic map
func NewOpCodesDescriptor(mnemonics map[OpCode]string) OpCodesDescriptor {
	for i, opCode := range utils.Iota(int(TOTAL_OPCODES), func(i int) OpCode { return OpCode(i) }) {
		if _, hasOpCode := mnemonics[opCode]; !hasOpCode {
			panic(fmt.Sprintf("missing entry for opcode %v in mnemonics table", i))
		}
	}

	d := OpCodesDescriptor{
		mnemonics:         mnemonics,
		mnemonicsToOpCode: utils.InvertedMap(mnemonics),
	}

	if len(d.mnemonicsToOpCode) != d.TotalOpCodes() {
		panic("duplicated mnemonic in opcode mnemonics table")
	}

	if d.TotalOpCodes() != int(TOTAL_OPCODES) {
		panic("missing entry in opcode mnemonics table")
	}
	return d
}
