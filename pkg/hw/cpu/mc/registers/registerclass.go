package registers

type RegisterClass uint

const (
	// General purpose address registers (AR)
	RegisterClass_AR RegisterClass = iota

	// Floating point registers (FPR)
	RegisterClass_FPR

	// Boolean registers (BR)
	RegisterClass_BR

	// Special registers (SR), accessed through RSR/WSR/XSR
	RegisterClass_SR

	// User registers (UR), accessed through RUR/WUR
	RegisterClass_UR

	// Number of register classes
	TOTAL_REGISTER_CLASSES
)

func (rc RegisterClass) String() string {
	switch rc {
	case RegisterClass_AR:
		return "general purpose registers"
	case RegisterClass_FPR:
		return "floating point registers"
	case RegisterClass_BR:
		return "boolean registers"
	case RegisterClass_SR:
		return "special registers"
	case RegisterClass_UR:
		return "user registers"
	}

	panic("unreachable")
}
