package llvm

import (
	"embed"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
	"github.com/Manu343726/xtensa/pkg/utils"
)

//go:embed templates
var Templates embed.FS

// Writes the opcode table as TableGen records
type Generator struct {
	template *template.Template
}

// Returns the TableGen record name of a mnemonic (add.n -> ADD_N)
func Ident(mnemonic string) string {
	return strings.ToUpper(strings.ReplaceAll(mnemonic, ".", "_"))
}

// Returns the TableGen predicate of a core option (single-float -> HasSingleFloat)
func Predicate(feature types.Feature) string {
	words := strings.Split(feature.String(), "-")

	return "Has" + strings.Join(utils.Map(words, func(word string) string {
		return strings.ToUpper(word[:1]) + word[1:]
	}), "")
}

func NewGenerator() (*Generator, error) {
	funcs := template.FuncMap{
		"Ident": Ident,
		"Binary": func(bits int, value uint64) string {
			return "0b" + utils.FormatUintBinary(value, bits)
		},
		"Join": func(separator string, items []string) string {
			return strings.Join(items, separator)
		},
		"Predicates": func(features types.FeatureSet) []string {
			return utils.Map(features.Features(), Predicate)
		},
	}

	t, err := template.New("XtensaEncodings.td").Funcs(funcs).
		ParseFS(Templates, "templates/Xtensa*.td")

	if err != nil {
		return nil, err
	}

	return &Generator{
		template: t,
	}, nil
}

func (g *Generator) GenerateTo(writer io.Writer, descriptor *mc.MachineCodeDescriptor) error {
	return g.template.Execute(writer, descriptor)
}

func (g *Generator) Generate(outputFile string, descriptor *mc.MachineCodeDescriptor) error {
	f, err := os.Create(outputFile)

	if err != nil {
		return err
	}

	defer f.Close()
	return g.GenerateTo(f, descriptor)
}
