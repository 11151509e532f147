package utils

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeysValues_SliceValues(t *testing.T) {
	bySize := map[int][]string{2: {"ret.n"}, 3: {"add", "l32i"}}

	keys := Keys(bySize)
	sort.Ints(keys)
	assert.Equal(t, []int{2, 3}, keys)

	assert.ElementsMatch(t, [][]string{{"ret.n"}, {"add", "l32i"}}, Values(bySize))
}

func TestInvertedMap(t *testing.T) {
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, InvertedMap(map[int]string{1: "a", 2: "b"}))
}
