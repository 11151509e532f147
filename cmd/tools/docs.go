package tools

import (
	"fmt"
	"os"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/instructions"
	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs [mnemonic]",
	Short: "Show the instruction set documentation",
	Long: `Dumps the documentation of the machine code: register classes and, for every
implemented instruction, its description, required core options and bit layout.
If a mnemonic is given only that instruction is documented.

By default the tool dumps the documentation to stdout, but it can be redirected to a file using the --output flag.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := documentation(args)
		if err != nil {
			return err
		}

		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile == "" {
			fmt.Fprintln(cmd.OutOrStdout(), doc)
			return nil
		}

		file, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("error creating file: %w", err)
		}
		defer file.Close()

		_, err = fmt.Fprintln(file, doc)
		return err
	},
}

func documentation(args []string) (string, error) {
	if len(args) == 0 {
		return mc.Descriptor.DocString()
	}

	op, err := instructions.Opcodes.ParseOpCode(args[0])
	if err != nil {
		return "", err
	}

	instruction, err := mc.Descriptor.Instructions.Instruction(op)
	if err != nil {
		return "", err
	}

	return mc.Descriptor.InstructionDocumentation(instruction, 0)
}

func init() {
	ToolsCmd.AddCommand(docsCmd)
	docsCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the documentation is dumped to stdout.")
}
