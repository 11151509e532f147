package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Optional capability of an Xtensa core configuration
type Feature uint

const (
	// 16-bit compact instruction encodings
	Feature_Density Feature = iota
	Feature_SingleFloat
	Feature_Loop
	Feature_MAC16
	// Windowed register ABI (CALLn, ENTRY, RETW, ...)
	Feature_Windowed
	Feature_Boolean
	Feature_SEXT
	Feature_NSA
	Feature_Mul32
	Feature_Mul32High
	Feature_Div32
	Feature_DFPAccel
	Feature_S32C1I
	Feature_THREADPTR
	Feature_ExtendedL32R
	Feature_ATOMCTL
	Feature_MEMCTL
	Feature_Debug
	Feature_Exception
	Feature_HighPriInterrupts
	Feature_Coprocessor
	Feature_Interrupt
	Feature_RelocatableVector
	Feature_TimerInt
	Feature_PRID
	Feature_MiscSR

	// Number of features
	TOTAL_FEATURES
)

var featureNames = map[Feature]string{
	Feature_Density:           "density",
	Feature_SingleFloat:       "single-float",
	Feature_Loop:              "loop",
	Feature_MAC16:             "mac16",
	Feature_Windowed:          "windowed",
	Feature_Boolean:           "boolean",
	Feature_SEXT:              "sext",
	Feature_NSA:               "nsa",
	Feature_Mul32:             "mul32",
	Feature_Mul32High:         "mul32high",
	Feature_Div32:             "div32",
	Feature_DFPAccel:          "dfpaccel",
	Feature_S32C1I:            "s32c1i",
	Feature_THREADPTR:         "threadptr",
	Feature_ExtendedL32R:      "extended-l32r",
	Feature_ATOMCTL:           "atomctl",
	Feature_MEMCTL:            "memctl",
	Feature_Debug:             "debug",
	Feature_Exception:         "exception",
	Feature_HighPriInterrupts: "highpri-interrupts",
	Feature_Coprocessor:       "coprocessor",
	Feature_Interrupt:         "interrupt",
	Feature_RelocatableVector: "relocatable-vector",
	Feature_TimerInt:          "timer-int",
	Feature_PRID:              "prid",
	Feature_MiscSR:            "misc-sr",
}

func (f Feature) String() string {
	if name, ok := featureNames[f]; ok {
		return name
	}

	panic("unreachable")
}

var ErrUnknownFeature = errors.New("unknown feature")

// Returns the feature with the given name (case insensitive)
func ParseFeature(name string) (Feature, error) {
	wanted := strings.ToLower(strings.TrimSpace(name))

	for feature, featureName := range featureNames {
		if featureName == wanted {
			return feature, nil
		}
	}

	return 0, fmt.Errorf("%w: '%v'", ErrUnknownFeature, name)
}

// Immutable set of enabled features
type FeatureSet uint64

// Returns a set with the given features enabled
func MakeFeatureSet(features ...Feature) FeatureSet {
	var set FeatureSet

	for _, f := range features {
		set |= 1 << f
	}

	return set
}

// Parses a list of feature names into a feature set
func ParseFeatureSet(names []string) (FeatureSet, error) {
	features := make([]Feature, 0, len(names))

	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}

		feature, err := ParseFeature(name)

		if err != nil {
			return 0, err
		}

		features = append(features, feature)
	}

	return MakeFeatureSet(features...), nil
}

// Returns true if the feature is enabled
func (s FeatureSet) Has(f Feature) bool {
	return s&(1<<f) != 0
}

// Returns true if all the given features are enabled
func (s FeatureSet) HasAll(other FeatureSet) bool {
	return s&other == other
}

// Returns the features in other that are not enabled in this set
func (s FeatureSet) Missing(other FeatureSet) FeatureSet {
	return other &^ s
}

// Returns the enabled features sorted by declaration order
func (s FeatureSet) Features() []Feature {
	result := []Feature{}

	for f := Feature(0); f < TOTAL_FEATURES; f++ {
		if s.Has(f) {
			result = append(result, f)
		}
	}

	return result
}

func (s FeatureSet) String() string {
	names := make([]string, 0, TOTAL_FEATURES)

	for _, f := range s.Features() {
		names = append(names, f.String())
	}

	sort.Strings(names)
	return "{" + strings.Join(names, ",") + "}"
}
