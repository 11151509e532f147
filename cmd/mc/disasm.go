package mc

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Manu343726/xtensa/cmd/settings"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/llvm"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc"
	"github.com/fatih/color"
	"github.com/sourcegraph/conc/iter"
	"github.com/spf13/cobra"
)

var hexInput bool
var baseAddress uint64

// Disassembly of one input
type listing struct {
	name        string
	lines       []mc.Line
	relocations []llvm.Relocation
}

var disasmCmd = &cobra.Command{
	Use:   "disasm FILE...",
	Short: "Disassemble Xtensa machine code",
	Long: `Disassembles raw binaries or ELF relocatable objects. ELF objects are detected
automatically: their .text section is disassembled at its address, with branch and call
targets shown as the symbols they land on, followed by the .text relocations.

With --hex the arguments are hex strings instead of file names.
Several inputs are disassembled concurrently and printed in order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		decoder, err := newDecoder()
		if err != nil {
			return err
		}

		listings, err := iter.MapErr(args, func(arg *string) (*listing, error) {
			return disassemble(decoder, *arg)
		})
		if err != nil {
			return err
		}

		for i, l := range listings {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}

			printListing(cmd.OutOrStdout(), l, len(listings) > 1)
		}

		return nil
	},
}

func disassemble(decoder *mc.Decoder, input string) (*listing, error) {
	if hexInput {
		code, err := hex.DecodeString(strings.Join(strings.Fields(input), ""))
		if err != nil {
			return nil, fmt.Errorf("invalid hex input '%v': %w", input, err)
		}

		lines, err := decoder.Disassemble(code, baseAddress)
		return &listing{name: input, lines: lines}, err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return nil, err
	}

	if llvm.IsELF(bytes.NewReader(data)) {
		object, err := llvm.ReadObject(bytes.NewReader(data), decoder)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", input, err)
		}

		return &listing{name: input, lines: object.Lines, relocations: object.Relocations}, nil
	}

	lines, err := decoder.Disassemble(data, baseAddress)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", input, err)
	}

	return &listing{name: input, lines: lines}, nil
}

func printListing(out io.Writer, l *listing, header bool) {
	var highlight func(string) string

	if !color.NoColor {
		highlight = settings.Highlight
	}

	if header {
		fmt.Fprintf(out, "%v:\n", l.name)
	}

	for _, line := range l.lines {
		fmt.Fprintln(out, line.Format(highlight))
	}

	if len(l.relocations) > 0 {
		fmt.Fprintln(out, "\nrelocations:")

		for _, relocation := range l.relocations {
			fmt.Fprintln(out, relocation)
		}
	}
}

func init() {
	McCmd.AddCommand(disasmCmd)
	disasmCmd.Flags().BoolVar(&hexInput, "hex", false, "Arguments are hex strings instead of files")
	disasmCmd.Flags().Uint64VarP(&baseAddress, "address", "a", 0, "Address of the first byte of raw input")
}
