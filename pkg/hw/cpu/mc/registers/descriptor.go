package registers

import (
	"fmt"
	"strings"

	"github.com/Manu343726/xtensa/pkg/utils"
)

// Contains all the metadata describing the registers and register classes of the Xtensa architecture
var RegisterClasses RegisterClassesDescriptor = NewRegisterClassesDescriptor(
	[]*RegisterClassDescriptor{
		AddressRegisters(),
		FloatRegisters(),
		BooleanRegisters(),
		SpecialRegisters(),
		UserRegisters(),
	},
	registerNames(),
	map[Register][]string{
		Register_A1: {"sp"},
	},
)

// Returns count consecutive register ids starting from first
func registerRange(first Register, count int) []Register {
	return utils.Iota(count, func(i int) Register { return first + Register(i) })
}

// General purpose address registers a0-a15. a1 is the stack pointer
func AddressRegisters() *RegisterClassDescriptor {
	return NewDenseRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:        RegisterClass_AR,
		Description:  "General purpose 32 bit address registers",
		EncodingBits: 4,
	}, registerRange(Register_A0, 16))
}

// Single precision floating point registers f0-f15
func FloatRegisters() *RegisterClassDescriptor {
	return NewDenseRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:        RegisterClass_FPR,
		Description:  "Single precision floating point registers",
		EncodingBits: 4,
	}, registerRange(Register_F0, 16))
}

// Boolean registers b0-b15
func BooleanRegisters() *RegisterClassDescriptor {
	return NewDenseRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:        RegisterClass_BR,
		Description:  "One bit boolean registers",
		EncodingBits: 4,
	}, registerRange(Register_B0, 16))
}

func sr(r Register, number uint64) utils.Pair[Register, uint64] {
	return utils.MakePair(r, number)
}

// Special registers, encoded in the 8 bit sr field of RSR/WSR/XSR
func SpecialRegisters() *RegisterClassDescriptor {
	return NewSparseRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:        RegisterClass_SR,
		Description:  "Special registers",
		EncodingBits: 8,
	}, []utils.Pair[Register, uint64]{
		sr(Register_LBEG, 0), sr(Register_LEND, 1),
		sr(Register_LCOUNT, 2), sr(Register_SAR, 3),
		sr(Register_BREG, 4), sr(Register_LITBASE, 5),
		sr(Register_SCOMPARE1, 12), sr(Register_ACCLO, 16),
		sr(Register_ACCHI, 17), sr(Register_M0, 32),
		sr(Register_M1, 33), sr(Register_M2, 34),
		sr(Register_M3, 35), sr(Register_WINDOWBASE, 72),
		sr(Register_WINDOWSTART, 73), sr(Register_IBREAKENABLE, 96),
		sr(Register_MEMCTL, 97), sr(Register_ATOMCTL, 99),
		sr(Register_DDR, 104), sr(Register_IBREAKA0, 128),
		sr(Register_IBREAKA1, 129), sr(Register_DBREAKA0, 144),
		sr(Register_DBREAKA1, 145), sr(Register_DBREAKC0, 160),
		sr(Register_DBREAKC1, 161), sr(Register_CONFIGID0, 176),
		sr(Register_EPC1, 177), sr(Register_EPC2, 178),
		sr(Register_EPC3, 179), sr(Register_EPC4, 180),
		sr(Register_EPC5, 181), sr(Register_EPC6, 182),
		sr(Register_EPC7, 183), sr(Register_DEPC, 192),
		sr(Register_EPS2, 194), sr(Register_EPS3, 195),
		sr(Register_EPS4, 196), sr(Register_EPS5, 197),
		sr(Register_EPS6, 198), sr(Register_EPS7, 199),
		sr(Register_CONFIGID1, 208), sr(Register_EXCSAVE1, 209),
		sr(Register_EXCSAVE2, 210), sr(Register_EXCSAVE3, 211),
		sr(Register_EXCSAVE4, 212), sr(Register_EXCSAVE5, 213),
		sr(Register_EXCSAVE6, 214), sr(Register_EXCSAVE7, 215),
		sr(Register_CPENABLE, 224), sr(Register_INTSET, 226),
		sr(Register_INTENABLE, 228), sr(Register_PS, 230),
		sr(Register_VECBASE, 231), sr(Register_EXCCAUSE, 232),
		sr(Register_DEBUGCAUSE, 233), sr(Register_CCOUNT, 234),
		sr(Register_PRID, 235), sr(Register_ICOUNT, 236),
		sr(Register_ICOUNTLEVEL, 237), sr(Register_EXCVADDR, 238),
		sr(Register_CCOMPARE0, 240), sr(Register_CCOMPARE1, 241),
		sr(Register_CCOMPARE2, 242), sr(Register_MISC0, 244),
		sr(Register_MISC1, 245), sr(Register_MISC2, 246),
		sr(Register_MISC3, 247),
	})
}

// User registers, encoded in the 8 bit ur field of RUR/WUR
func UserRegisters() *RegisterClassDescriptor {
	return NewSparseRegisterClassDescriptor(&RegisterClassDescriptor{
		Class:        RegisterClass_UR,
		Description:  "User registers",
		EncodingBits: 8,
	}, []utils.Pair[Register, uint64]{
		sr(Register_THREADPTR, 231),
	})
}

var specialRegisterNames = []string{
	"LBEG", "LEND", "LCOUNT", "SAR", "BREG", "LITBASE", "SCOMPARE1", "ACCLO",
	"ACCHI", "M0", "M1", "M2", "M3", "WINDOWBASE", "WINDOWSTART", "IBREAKENABLE",
	"MEMCTL", "ATOMCTL", "DDR", "IBREAKA0", "IBREAKA1", "DBREAKA0", "DBREAKA1",
	"DBREAKC0", "DBREAKC1", "CONFIGID0", "EPC1", "EPC2", "EPC3", "EPC4", "EPC5",
	"EPC6", "EPC7", "DEPC", "EPS2", "EPS3", "EPS4", "EPS5", "EPS6", "EPS7",
	"CONFIGID1", "EXCSAVE1", "EXCSAVE2", "EXCSAVE3", "EXCSAVE4", "EXCSAVE5",
	"EXCSAVE6", "EXCSAVE7", "CPENABLE", "INTSET", "INTENABLE", "PS", "VECBASE",
	"EXCCAUSE", "DEBUGCAUSE", "CCOUNT", "PRID", "ICOUNT", "ICOUNTLEVEL",
	"EXCVADDR", "CCOMPARE0", "CCOMPARE1", "CCOMPARE2", "MISC0", "MISC1", "MISC2",
	"MISC3", "THREADPTR",
}

func registerNames() map[Register]string {
	names := make(map[Register]string, TOTAL_REGISTERS)

	for i := 0; i < 16; i++ {
		names[Register_A0+Register(i)] = fmt.Sprintf("a%v", i)
		names[Register_F0+Register(i)] = fmt.Sprintf("f%v", i)
		names[Register_B0+Register(i)] = fmt.Sprintf("b%v", i)
	}

	if len(specialRegisterNames) != int(TOTAL_REGISTERS-Register_LBEG) {
		panic("special register names table out of sync with register ids")
	}

	for i, name := range specialRegisterNames {
		names[Register_LBEG+Register(i)] = strings.ToLower(name)
	}

	return names
}
