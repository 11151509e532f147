package mc

import (
	"fmt"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/llvm"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc"
	"github.com/spf13/cobra"
)

var outputFile string

// tablegenCmd represents the tablegen command
var tablegenCmd = &cobra.Command{
	Use:   "tablegen",
	Short: "Generate LLVM tablegen records of the Xtensa instruction encodings",
	Long: `Writes one tablegen record per implemented instruction with its size, the mask and
value of its fixed opcode bits and the core options it requires. The records can be
diffed against the encodings of an LLVM backend.

See https://llvm.org/docs/TableGen/ for more information about tablegen.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := llvm.NewGenerator()
		if err != nil {
			return fmt.Errorf("error initializing llvm.Generator: %w", err)
		}

		if len(outputFile) == 0 {
			err = g.GenerateTo(cmd.OutOrStdout(), &mc.Descriptor)
		} else {
			err = g.Generate(outputFile, &mc.Descriptor)
		}

		if err != nil {
			return fmt.Errorf("error generating tablegen file: %w", err)
		}

		return nil
	},
}

func init() {
	McCmd.AddCommand(tablegenCmd)
	tablegenCmd.Flags().StringVarP(&outputFile, "output-file", "o", "", "Output file. If omitted, the output will be written to stdout")
}
