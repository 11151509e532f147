package mc

import (
	"fmt"
	"strings"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/llvm"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/instructions"
	"github.com/Manu343726/xtensa/pkg/utils"
	"github.com/spf13/cobra"
)

var tpoff bool

var relocCmd = &cobra.Command{
	Use:   "reloc KIND",
	Short: "Show the ELF relocation emitted for a fixup kind",
	Long: `Prints the ELF relocation type an object writer emits for a fixup of the given kind.
With --tpoff the fixup references a thread local variable (sym@tpoff).

Fixup kinds:
` + strings.Join(utils.Iota(int(mc.TOTAL_FIXUP_KINDS), func(i int) string { return "  " + mc.FixupKind(i).String() }), "\n"),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := mc.ParseFixupKind(args[0])
		if err != nil {
			return err
		}

		variant := instructions.SymbolVariant_None
		if tpoff {
			variant = instructions.SymbolVariant_TPOFF
		}

		relocation, err := llvm.SelectRelocation(kind, variant)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%v (%d)\n", relocation, uint32(relocation))
		fmt.Fprintf(cmd.OutOrStdout(), "relocate with symbol: %v\n", llvm.NeedsRelocateWithSymbol("", relocation))
		return nil
	},
}

func init() {
	McCmd.AddCommand(relocCmd)
	relocCmd.Flags().BoolVar(&tpoff, "tpoff", false, "The fixup references a thread local variable")
}
