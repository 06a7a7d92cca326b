package psth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentile(t *testing.T) {
	v := []float64{1, 2, 3, 4}
	assert.Equal(t, 1.0, percentile(v, 0))
	assert.Equal(t, 2.5, percentile(v, 50))
	assert.Equal(t, 4.0, percentile(v, 100))
	assert.InDelta(t, 1.075, percentile(v, 2.5), 1e-12)
	assert.Equal(t, 7.0, percentile([]float64{7}, 97.5))
}

func TestReflectIndex(t *testing.T) {
	got := make([]int, 0, 12)
	for i := -4; i < 8; i++ {
		got = append(got, reflectIndex(i, 4))
	}
	assert.Equal(t, []int{3, 2, 1, 0, 0, 1, 2, 3, 3, 2, 1, 0}, got)
	assert.Equal(t, 0, reflectIndex(-3, 1))
}
