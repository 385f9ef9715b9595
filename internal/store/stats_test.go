package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedianInts_EvenCount(t *testing.T) {
	assert.Equal(t, 2.5, medianInts([]int{1, 2, 3, 4}))
}

func TestMedianInts_OddCount(t *testing.T) {
	assert.Equal(t, 3.0, medianInts([]int{5, 3, 1}))
}

func TestMedianInts_Single(t *testing.T) {
	assert.Equal(t, 4.0, medianInts([]int{4}))
}

func TestMedianInts_Unsorted(t *testing.T) {
	assert.Equal(t, 2.5, medianInts([]int{4, 1, 3, 2}))
}

func TestMedianInts_DoesNotMutateInput(t *testing.T) {
	values := []int{3, 1, 2}
	medianInts(values)
	assert.Equal(t, []int{3, 1, 2}, values)
}

func TestMean(t *testing.T) {
	assert.Equal(t, 2.5, mean([]float64{1, 2, 3, 4}))
	assert.Equal(t, 0.0, mean(nil))
}
