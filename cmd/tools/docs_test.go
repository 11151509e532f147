package tools

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/instructions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	ToolsCmd.SetOut(&out)
	ToolsCmd.SetErr(io.Discard)
	ToolsCmd.SetArgs(args)

	err := ToolsCmd.Execute()
	return out.String(), err
}

func TestDocs_Instruction(t *testing.T) {
	out, err := run(t, "docs", "--output", "", "CALL8")
	require.NoError(t, err)

	assert.Contains(t, out, "Requires: {windowed}")
	assert.Contains(t, out, "Opcode: call8 (size: 3")
	assert.NotContains(t, out, "Register classes:")
}

func TestDocs_All(t *testing.T) {
	out, err := run(t, "docs", "--output", "")
	require.NoError(t, err)

	assert.Contains(t, out, "Register classes:")
	assert.Contains(t, out, "Opcode: l32i (size: 3")
	assert.Contains(t, out, "Opcode: ret.n (size: 2")
}

func TestDocs_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "l32i.txt")

	out, err := run(t, "docs", "--output", path, "l32i")
	require.NoError(t, err)
	assert.Empty(t, out)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "Opcode: l32i")
}

func TestDocs_UnknownMnemonic(t *testing.T) {
	_, err := run(t, "docs", "--output", "", "vadd")
	require.ErrorIs(t, err, instructions.ErrInvalidOpCode)
}
