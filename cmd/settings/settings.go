// Package settings turns the CLI configuration (flags, config file and
// XTENSA_ environment variables, merged by viper) into codec and logging
// configuration
package settings

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/registers"
	"github.com/Manu343726/xtensa/pkg/hw/cpu/mc/types"
	"github.com/Manu343726/xtensa/pkg/utils"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// Configuration keys
const (
	Features  = "features"
	ByteOrder = "byte-order"
	LogLevel  = "log-level"
	LogFile   = "log-file"
	Color     = "color"
)

// Returns the feature names configured, accepting both lists and comma
// separated strings (as set from environment variables)
func featureNames() []string {
	names := []string{}

	for _, item := range viper.GetStringSlice(Features) {
		names = append(names, strings.FieldsFunc(item, func(r rune) bool {
			return r == ',' || r == ' '
		})...)
	}

	return names
}

// Builds the codec configuration from the CLI configuration
func CodecConfig(logger *slog.Logger) (mc.Config, error) {
	config := mc.DefaultConfig()
	config.Logger = logger

	if names := featureNames(); len(names) > 0 {
		features, err := types.ParseFeatureSet(names)

		if err != nil {
			return mc.Config{}, err
		}

		config.Features = features
	}

	if name := viper.GetString(ByteOrder); name != "" {
		order, err := types.ParseByteOrder(name)

		if err != nil {
			return mc.Config{}, err
		}

		config.ByteOrder = order
	}

	return config, nil
}

// Creates the CLI logger: text records to stderr, plus JSON records to
// logFile if not empty. The returned function closes the log file
func NewLogger(level string, logFile string, stderr io.Writer) (*slog.Logger, func() error, error) {
	var lvl slog.Level

	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level '%v': %w", level, err)
	}

	options := &slog.HandlerOptions{Level: lvl}
	handlers := []slog.Handler{slog.NewTextHandler(stderr, options)}
	closer := func() error { return nil }

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)

		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}

		handlers = append(handlers, slog.NewJSONHandler(f, options))
		closer = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// Reports whether output to the given file descriptor is colored, for
// "always", "never" or "auto" (only terminals, unless NO_COLOR is set)
func ColorEnabled(mode string, fd uintptr) (bool, error) {
	switch strings.ToLower(mode) {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "", "auto":
		return os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(fd)), nil
	}

	return false, fmt.Errorf("invalid color mode '%v', expected always, never or auto", mode)
}

// Returns true if name is the name of a register of any class
func IsRegister(name string) bool {
	_, err := registers.RegisterClasses.RegisterByName(name)
	return err == nil
}

// Highlights the text of disassembly lines
func Highlight(text string) string {
	return utils.HighlightAssembly(text, IsRegister)
}
