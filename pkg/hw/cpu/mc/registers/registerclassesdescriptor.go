package registers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Manu343726/xtensa/pkg/utils"
)

// Contains all register classes and the names of all architectural registers
type RegisterClassesDescriptor struct {
	classes     map[RegisterClass]*RegisterClassDescriptor
	descriptors map[Register]*RegisterDescriptor
	byName      map[string]*RegisterDescriptor
}

// Returns the descriptor of a register class
func (d *RegisterClassesDescriptor) Class(rc RegisterClass) *RegisterClassDescriptor {
	return d.classes[rc]
}

// Returns all the register classes sorted by class
func (d *RegisterClassesDescriptor) AllClasses() []*RegisterClassDescriptor {
	return utils.Iota(int(TOTAL_REGISTER_CLASSES), func(i int) *RegisterClassDescriptor {
		return d.classes[RegisterClass(i)]
	})
}

var ErrInvalidRegister = errors.New("invalid register")

// Returns the descriptor of an architectural register
func (d *RegisterClassesDescriptor) Descriptor(r Register) (*RegisterDescriptor, error) {
	if descriptor, ok := d.descriptors[r]; ok {
		return descriptor, nil
	}

	return nil, utils.MakeError(ErrInvalidRegister, "register id %v", uint(r))
}

// Returns the register encoded as number in the given class. Equivalent to Class(class).Decode(number)
func (d *RegisterClassesDescriptor) Decode(class RegisterClass, number uint64) (Register, error) {
	return d.Class(class).Decode(number)
}

// Returns the number of a register within the given class. Equivalent to Class(class).Encode(r)
func (d *RegisterClassesDescriptor) Encode(class RegisterClass, r Register) (uint64, error) {
	return d.Class(class).Encode(r)
}

// Returns a register given its name or one of its aliases
func (d *RegisterClassesDescriptor) RegisterByName(name string) (Register, error) {
	if descriptor, ok := d.byName[strings.ToLower(name)]; ok {
		return descriptor.Register, nil
	}

	return Register_Invalid, utils.MakeError(ErrInvalidRegister, "'%v'", name)
}

// Initializes a register classes descriptor with all the given register class descriptors and register names
func NewRegisterClassesDescriptor(classes []*RegisterClassDescriptor, names map[Register]string, aliases map[Register][]string) RegisterClassesDescriptor {
	d := RegisterClassesDescriptor{
		classes:     utils.GenMap(classes, func(c *RegisterClassDescriptor) RegisterClass { return c.Class }),
		descriptors: make(map[Register]*RegisterDescriptor, TOTAL_REGISTERS),
		byName:      make(map[string]*RegisterDescriptor, TOTAL_REGISTERS),
	}

	for class := RegisterClass(0); class < TOTAL_REGISTER_CLASSES; class++ {
		descriptor, hasClass := d.classes[class]

		if !hasClass {
			panic(fmt.Sprintf("missing entry for register class '%v' in registers classes descriptor. Make sure you've added an entry for all register classes in the NewRegisterClassesDescriptor() call", class))
		}

		for r, number := range descriptor.encodings {
			name, hasName := names[r]

			if !hasName {
				panic(fmt.Sprintf("missing name for register %v of class '%v'", uint(r), class))
			}

			if _, duplicated := d.descriptors[r]; duplicated {
				panic(fmt.Sprintf("register '%v' belongs to more than one register class", name))
			}

			registerDescriptor := &RegisterDescriptor{
				Register: r,
				Name:     name,
				Aliases:  aliases[r],
				Class:    class,
				Encoding: number,
			}

			d.descriptors[r] = registerDescriptor

			for _, n := range append([]string{name}, aliases[r]...) {
				d.byName[strings.ToLower(n)] = registerDescriptor
			}
		}
	}

	return d
}
