package llvm

import (
	"debug/elf"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
	"github.com/Manu343726/xtensa/pkg/utils"
)

// Code of an Xtensa relocatable object
type Object struct {
	// Path of the file the object was read from, if any
	FileName string
	// Address of the .text section
	TextAddress uint64
	// Contents of the .text section
	Text []byte
	// Names of the symbols defined in .text, by address
	Symbols map[uint64]string
	// Relocations of .text, from .rela.text
	Relocations []Relocation
	// Disassembly of .text
	Lines []mc.Line
}

var (
	ErrNotELF    = errors.New("not an ELF object")
	ErrNotXtensa = errors.New("not an Xtensa object")
	ErrNoText    = errors.New("object has no .text section")
)

// Size of an Elf32_Rela entry
const rela32Size = 12

// Reads an ELF relocatable object and disassembles its .text section. Branch,
// jump and call targets landing on a symbol of .text are printed as that symbol
func ReadObject(r io.ReaderAt, decoder *mc.Decoder) (*Object, error) {
	file, err := elf.NewFile(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotELF, err)
	}

	if file.Machine != elf.EM_XTENSA {
		return nil, utils.MakeError(ErrNotXtensa, "machine is %v", file.Machine)
	}

	if file.Class != elf.ELFCLASS32 {
		return nil, utils.MakeError(ErrNotXtensa, "expected 32-bit ELF file, got %v", file.Class)
	}

	if file.Data != elf.ELFDATA2LSB {
		return nil, utils.MakeError(types.ErrUnsupportedByteOrder, "expected little-endian ELF file, got %v", file.Data)
	}

	text := file.Section(".text")
	if text == nil {
		return nil, ErrNoText
	}

	code, err := text.Data()
	if err != nil {
		return nil, fmt.Errorf("failed to read .text section: %w", err)
	}

	symbols, err := file.Symbols()
	if err != nil && !errors.Is(err, elf.ErrNoSymbols) {
		// debug/elf reports an empty symbol table as a plain string error
		if err.Error() != "symbol section is empty" {
			return nil, fmt.Errorf("failed to read symbols: %w", err)
		}

		symbols = nil
	}

	object := &Object{
		TextAddress: text.Addr,
		Text:        code,
		Symbols:     textSymbols(file, text, symbols),
	}

	object.Relocations, err = readRelocations(file, symbols)
	if err != nil {
		return nil, err
	}

	object.Lines, err = decoder.WithSymbolizer(&mc.SymbolTable{Symbols: object.Symbols}).Disassemble(code, text.Addr)
	if err != nil {
		return nil, err
	}

	return object, nil
}

// Like ReadObject(), reading the object from a file
func OpenObject(path string, decoder *mc.Decoder) (*Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	object, err := ReadObject(f, decoder)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}

	object.FileName = path
	return object, nil
}

// Returns true if the reader starts with the ELF magic number
func IsELF(r io.ReaderAt) bool {
	magic := make([]byte, len(elf.ELFMAG))

	if _, err := r.ReadAt(magic, 0); err != nil {
		return false
	}

	return string(magic) == elf.ELFMAG
}

func textSymbols(file *elf.File, text *elf.Section, symbols []elf.Symbol) map[uint64]string {
	result := make(map[uint64]string)

	for _, symbol := range symbols {
		if symbol.Name == "" || symbol.Section == elf.SHN_UNDEF || int(symbol.Section) >= len(file.Sections) {
			continue
		}

		if file.Sections[symbol.Section] != text {
			continue
		}

		switch elf.ST_TYPE(symbol.Info) {
		case elf.STT_FUNC, elf.STT_NOTYPE:
			// Functions win over local labels at the same address
			if _, taken := result[symbol.Value]; !taken || elf.ST_TYPE(symbol.Info) == elf.STT_FUNC {
				result[symbol.Value] = symbol.Name
			}
		}
	}

	return result
}

func readRelocations(file *elf.File, symbols []elf.Symbol) ([]Relocation, error) {
	section := file.Section(".rela.text")
	if section == nil {
		return nil, nil
	}

	data, err := section.Data()
	if err != nil {
		return nil, fmt.Errorf("failed to read .rela.text section: %w", err)
	}

	if len(data)%rela32Size != 0 {
		return nil, fmt.Errorf(".rela.text size %v is not a multiple of %v", len(data), rela32Size)
	}

	relocations := make([]Relocation, 0, len(data)/rela32Size)

	for offset := 0; offset < len(data); offset += rela32Size {
		var entry elf.Rela32
		entry.Off = binary.LittleEndian.Uint32(data[offset:])
		entry.Info = binary.LittleEndian.Uint32(data[offset+4:])
		entry.Addend = int32(binary.LittleEndian.Uint32(data[offset+8:]))

		relocation := Relocation{
			Offset: uint64(entry.Off),
			Type:   RelocationType(elf.R_TYPE32(entry.Info)),
			Addend: int64(entry.Addend),
		}

		// debug/elf drops the null symbol, so symbol index i is symbols[i-1]
		if index := int(elf.R_SYM32(entry.Info)); index > 0 && index <= len(symbols) {
			symbol := symbols[index-1]
			relocation.Symbol = symbol.Name

			if relocation.Symbol == "" && elf.ST_TYPE(symbol.Info) == elf.STT_SECTION && int(symbol.Section) < len(file.Sections) {
				relocation.Symbol = file.Sections[symbol.Section].Name
			}
		}

		relocations = append(relocations, relocation)
	}

	sort.SliceStable(relocations, func(i, j int) bool { return relocations[i].Offset < relocations[j].Offset })
	return relocations, nil
}
