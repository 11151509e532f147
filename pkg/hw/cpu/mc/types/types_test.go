package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorClasses(t *testing.T) {
	assert.True(t, IsDecodeFailure(ErrTruncatedInput))
	assert.True(t, IsDecodeFailure(ErrNoMatch))
	assert.True(t, IsDecodeFailure(ErrUnknownRegister))
	assert.False(t, IsFatal(ErrNoMatch))

	for _, err := range []error{ErrOutOfRange, ErrMisaligned, ErrNotInTable, ErrUnsupportedByteOrder, ErrFeatureDisabled, ErrOperandShape, ErrWrongRegisterClass} {
		assert.True(t, IsFatal(err), "%v", err)
		assert.False(t, IsDecodeFailure(err), "%v", err)
	}

	wrapped := fmt.Errorf("encoding ADDI: %w", ErrOutOfRange)
	assert.True(t, IsFatal(wrapped))
}

func TestByteOrder_Validate(t *testing.T) {
	assert.NoError(t, LittleEndian.Validate())
	assert.ErrorIs(t, BigEndian.Validate(), ErrUnsupportedByteOrder)
}

func TestFeatureSet(t *testing.T) {
	set := MakeFeatureSet(Feature_Density, Feature_Windowed)

	assert.True(t, set.Has(Feature_Density))
	assert.True(t, set.Has(Feature_Windowed))
	assert.False(t, set.Has(Feature_Boolean))
	assert.True(t, set.HasAll(MakeFeatureSet(Feature_Windowed)))
	assert.False(t, set.HasAll(MakeFeatureSet(Feature_Windowed, Feature_SEXT)))
	assert.Equal(t, MakeFeatureSet(Feature_SEXT), set.Missing(MakeFeatureSet(Feature_Windowed, Feature_SEXT)))
	assert.Equal(t, "{density,windowed}", set.String())
}

func TestParseFeatureSet(t *testing.T) {
	set, err := ParseFeatureSet([]string{"Density", " windowed", "", "single-float"})
	require.NoError(t, err)
	assert.Equal(t, MakeFeatureSet(Feature_Density, Feature_Windowed, Feature_SingleFloat), set)

	_, err = ParseFeatureSet([]string{"hifi4"})
	assert.ErrorIs(t, err, ErrUnknownFeature)
}

func TestFeatureNamesAreComplete(t *testing.T) {
	for f := Feature(0); f < TOTAL_FEATURES; f++ {
		parsed, err := ParseFeature(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
}

func TestParseByteOrder(t *testing.T) {
	for name, expected := range map[string]ByteOrder{"little": LittleEndian, " LE ": LittleEndian, "Big": BigEndian, "be": BigEndian} {
		order, err := ParseByteOrder(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, order, name)
	}

	_, err := ParseByteOrder("middle")
	require.ErrorIs(t, err, ErrUnknownByteOrder)
}
