package registers

import (
	"fmt"
	"sort"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
	"github.com/Manu343726/xtensa/pkg/utils"
)

// Describes a single architectural register
type RegisterDescriptor struct {
	Register Register
	// Assembly name
	Name string
	// Alternative assembly names
	Aliases []string
	// Class the register belongs to
	Class RegisterClass
	// Number the register is encoded as within its class
	Encoding uint64
}

func (d *RegisterDescriptor) String() string {
	return d.Name
}

// Maps encoded register numbers of an instruction field to architectural registers.
//
// Dense classes are indexed directly by the field value and always have exactly
// 2^EncodingBits entries. Sparse classes only define some of the numbers a field
// can hold, and decoding a number outside of the class fails.
type RegisterClassDescriptor struct {
	Class       RegisterClass
	Description string
	// Width of the instruction field encoding registers of the class
	EncodingBits int

	dense     []Register
	sparse    map[uint64]Register
	encodings map[Register]uint64
}

// Returns true if the class is indexed directly by encoded number
func (d *RegisterClassDescriptor) IsDense() bool {
	return d.dense != nil
}

// Returns the number of registers in the class
func (d *RegisterClassDescriptor) TotalRegisters() int {
	return len(d.encodings)
}

// Returns all registers of the class sorted by encoded number
func (d *RegisterClassDescriptor) AllRegisters() []Register {
	if d.IsDense() {
		return d.dense
	}

	numbers := utils.Keys(d.sparse)
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
	return utils.Map(numbers, func(n uint64) Register { return d.sparse[n] })
}

// Returns true if the register belongs to the class
func (d *RegisterClassDescriptor) Contains(r Register) bool {
	_, ok := d.encodings[r]
	return ok
}

// Returns the register encoded as number in the class
func (d *RegisterClassDescriptor) Decode(number uint64) (Register, error) {
	if d.IsDense() {
		if number >= uint64(len(d.dense)) {
			return Register_Invalid, utils.MakeError(types.ErrUnknownRegister, "index %v out of range, %v has only %v registers", number, d.Class, len(d.dense))
		}

		return d.dense[number], nil
	}

	if !utils.IsUInt(d.EncodingBits, number) {
		return Register_Invalid, utils.MakeError(types.ErrUnknownRegister, "number %v does not fit the %v bit %v field", number, d.EncodingBits, d.Class)
	}

	if r, ok := d.sparse[number]; ok {
		return r, nil
	}

	return Register_Invalid, utils.MakeError(types.ErrUnknownRegister, "no %v register is encoded as %v", d.Class, number)
}

// Returns the number the register is encoded as in the class
func (d *RegisterClassDescriptor) Encode(r Register) (uint64, error) {
	if number, ok := d.encodings[r]; ok {
		return number, nil
	}

	return 0, utils.MakeError(types.ErrWrongRegisterClass, "'%v' is not one of the %v", r, d.Class)
}

// Initializes a dense register class. The class must have exactly 2^bits registers
func NewDenseRegisterClassDescriptor(descriptor *RegisterClassDescriptor, registers []Register) *RegisterClassDescriptor {
	if len(registers) != 1<<descriptor.EncodingBits {
		panic(fmt.Errorf("dense register class '%v' must have %v registers, got %v", descriptor.Class, 1<<descriptor.EncodingBits, len(registers)))
	}

	descriptor.dense = registers
	descriptor.encodings = make(map[Register]uint64, len(registers))

	for i, r := range registers {
		descriptor.encodings[r] = uint64(i)
	}

	return descriptor
}

// Initializes a sparse register class from register -> encoded number pairs. Encoded numbers must be unique
func NewSparseRegisterClassDescriptor(descriptor *RegisterClassDescriptor, registers []utils.Pair[Register, uint64]) *RegisterClassDescriptor {
	descriptor.sparse = make(map[uint64]Register, len(registers))
	descriptor.encodings = make(map[Register]uint64, len(registers))

	for _, entry := range registers {
		r, number := entry.Decompose()

		if previous, duplicated := descriptor.sparse[number]; duplicated {
			panic(fmt.Errorf("register class '%v' encodes both %v and %v as %v", descriptor.Class, uint(previous), uint(r), number))
		}

		if !utils.IsUInt(descriptor.EncodingBits, number) {
			panic(fmt.Errorf("register class '%v' encoding %v does not fit in %v bits", descriptor.Class, number, descriptor.EncodingBits))
		}

		descriptor.sparse[number] = r
		descriptor.encodings[r] = number
	}

	return descriptor
}
