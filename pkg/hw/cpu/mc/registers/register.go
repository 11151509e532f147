package registers

// Architectural register identity
type Register uint

const (
	Register_Invalid Register = iota

	// Address (general purpose) registers
	Register_A0
	Register_A1
	Register_A2
	Register_A3
	Register_A4
	Register_A5
	Register_A6
	Register_A7
	Register_A8
	Register_A9
	Register_A10
	Register_A11
	Register_A12
	Register_A13
	Register_A14
	Register_A15

	// Single precision floating point registers
	Register_F0
	Register_F1
	Register_F2
	Register_F3
	Register_F4
	Register_F5
	Register_F6
	Register_F7
	Register_F8
	Register_F9
	Register_F10
	Register_F11
	Register_F12
	Register_F13
	Register_F14
	Register_F15

	// Boolean registers
	Register_B0
	Register_B1
	Register_B2
	Register_B3
	Register_B4
	Register_B5
	Register_B6
	Register_B7
	Register_B8
	Register_B9
	Register_B10
	Register_B11
	Register_B12
	Register_B13
	Register_B14
	Register_B15

	// Special registers
	Register_LBEG
	Register_LEND
	Register_LCOUNT
	Register_SAR
	Register_BREG
	Register_LITBASE
	Register_SCOMPARE1
	Register_ACCLO
	Register_ACCHI
	Register_M0
	Register_M1
	Register_M2
	Register_M3
	Register_WINDOWBASE
	Register_WINDOWSTART
	Register_IBREAKENABLE
	Register_MEMCTL
	Register_ATOMCTL
	Register_DDR
	Register_IBREAKA0
	Register_IBREAKA1
	Register_DBREAKA0
	Register_DBREAKA1
	Register_DBREAKC0
	Register_DBREAKC1
	Register_CONFIGID0
	Register_EPC1
	Register_EPC2
	Register_EPC3
	Register_EPC4
	Register_EPC5
	Register_EPC6
	Register_EPC7
	Register_DEPC
	Register_EPS2
	Register_EPS3
	Register_EPS4
	Register_EPS5
	Register_EPS6
	Register_EPS7
	Register_CONFIGID1
	Register_EXCSAVE1
	Register_EXCSAVE2
	Register_EXCSAVE3
	Register_EXCSAVE4
	Register_EXCSAVE5
	Register_EXCSAVE6
	Register_EXCSAVE7
	Register_CPENABLE
	Register_INTSET
	Register_INTENABLE
	Register_PS
	Register_VECBASE
	Register_EXCCAUSE
	Register_DEBUGCAUSE
	Register_CCOUNT
	Register_PRID
	Register_ICOUNT
	Register_ICOUNTLEVEL
	Register_EXCVADDR
	Register_CCOMPARE0
	Register_CCOMPARE1
	Register_CCOMPARE2
	Register_MISC0
	Register_MISC1
	Register_MISC2
	Register_MISC3

	// User registers
	Register_THREADPTR

	// Number of architectural registers, including Register_Invalid
	TOTAL_REGISTERS
)

// Returns the assembly name of the register
func (r Register) String() string {
	if descriptor, err := RegisterClasses.Descriptor(r); err == nil {
		return descriptor.Name
	}

	return "<invalid register>"
}
