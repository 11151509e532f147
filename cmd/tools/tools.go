package tools

import (
	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var ToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Xtensa miscellaneous tools",
}
