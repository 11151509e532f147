package mc

import (
	"log/slog"

	"github.com/Manu343726/xtensa/cmd/settings"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
	"github.com/spf13/cobra"
)

// McCmd represents the mc command
var McCmd = &cobra.Command{
	Use:   "mc",
	Short: "Xtensa machine code tools",
}

func newDecoder() (*mc.Decoder, error) {
	config, err := settings.CodecConfig(slog.Default())
	if err != nil {
		return nil, err
	}

	return mc.NewDecoder(config, nil)
}

// Builds an encoder from the configuration. Non empty features replace the configured ones
func newEncoder(features []string) (*mc.Encoder, error) {
	config, err := settings.CodecConfig(slog.Default())
	if err != nil {
		return nil, err
	}

	if len(features) > 0 {
		config.Features, err = types.ParseFeatureSet(features)
		if err != nil {
			return nil, err
		}
	}

	return mc.NewEncoder(config, nil)
}
