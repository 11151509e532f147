package types

import (
	"errors"
	"fmt"
	"strings"
)

// Byte order of instruction words in memory
type ByteOrder uint

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	}

	panic("unreachable")
}

// Returns an error if the codec cannot work with the byte order
func (o ByteOrder) Validate() error {
	if o != LittleEndian {
		return ErrUnsupportedByteOrder
	}

	return nil
}

var ErrUnknownByteOrder = errors.New("unknown byte order")

// Parses "little" or "big", case insensitive
func ParseByteOrder(name string) (ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "little", "le":
		return LittleEndian, nil
	case "big", "be":
		return BigEndian, nil
	}

	return LittleEndian, fmt.Errorf("%w '%v'", ErrUnknownByteOrder, name)
}
