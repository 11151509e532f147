package mc

import (
	"io"
	"log/slog"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
)

// Codec configuration, fixed at construction of decoders and encoders
type Config struct {
	// Byte order of instruction words. Only little endian is supported
	ByteOrder types.ByteOrder
	// Enabled core options
	Features types.FeatureSet
	// Debug traces of the codec. If nil traces are discarded
	Logger *slog.Logger
}

// Features enabled when the user does not configure any
var DefaultFeatures = types.MakeFeatureSet(types.Feature_Density, types.Feature_Windowed)

// Returns a little endian configuration with the default features
func DefaultConfig() Config {
	return Config{
		ByteOrder: types.LittleEndian,
		Features:  DefaultFeatures,
	}
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return c.Logger
}

// Returns the instruction widths in bytes the configuration decodes, in the order they are tried
func (c Config) Widths() []int {
	if c.Features.Has(types.Feature_Density) {
		return []int{2, 3}
	}

	return []int{3}
}
