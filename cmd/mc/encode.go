package mc

import (
	"fmt"
	"os"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/llvm"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Input of the encode command
type program struct {
	// Overrides the configured core options
	Features []string `yaml:"features,omitempty"`
	// Assembly lines
	Code []string `yaml:"code"`
}

// Output of the encode command
type encoding struct {
	Bytes       string            `yaml:"bytes"`
	Labels      map[string]uint64 `yaml:"labels,omitempty"`
	Fixups      []mc.Fixup        `yaml:"fixups,omitempty"`
	Relocations []llvm.Relocation `yaml:"relocations,omitempty"`
}

var encodeCmd = &cobra.Command{
	Use:   "encode FILE.yaml",
	Short: "Encode Xtensa assembly",
	Long: `Encodes a YAML program into machine code. The program lists assembly lines
under "code" and optionally the core options to encode with under "features":

  features: [density, windowed]
  code:
    - entry a1, 32
    - call8 printf
    - retw.n

The output is YAML with the encoded bytes, the labels defined, the fixups left for
symbolic operands and the ELF relocation each fixup turns into.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		var input program
		if err := yaml.Unmarshal(data, &input); err != nil {
			return fmt.Errorf("%v: %w", args[0], err)
		}

		encoder, err := newEncoder(input.Features)
		if err != nil {
			return fmt.Errorf("%v: %w", args[0], err)
		}

		output, err := encode(encoder, args[0], input.Code)
		if err != nil {
			return err
		}

		out := yaml.NewEncoder(cmd.OutOrStdout())
		out.SetIndent(2)
		defer out.Close()

		return out.Encode(output)
	},
}

func encode(encoder *mc.Encoder, file string, code []string) (*encoding, error) {
	section, err := mc.NewAssembler(encoder).Assemble(file, code)
	if err != nil {
		return nil, err
	}

	relocations, err := llvm.Relocations(section.Fixups)
	if err != nil {
		return nil, err
	}

	return &encoding{
		Bytes:       fmt.Sprintf("% x", section.Bytes),
		Labels:      section.Labels,
		Fixups:      section.Fixups,
		Relocations: relocations,
	}, nil
}

func init() {
	McCmd.AddCommand(encodeCmd)
}
