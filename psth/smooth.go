package psth

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// truncate is how many sigmas the Gaussian kernel extends on each side.
const truncate = 4.0

func gaussianKernel(sigma float64) ([]float64, error) {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return nil, fmt.Errorf("%w: sigma must be > 0: %v", ErrBadOption, sigma)
	}
	radius := int(truncate*sigma + 0.5)
	k := make([]float64, 2*radius+1)
	for i := range k {
		x := float64(i - radius)
		k[i] = math.Exp(-0.5 * x * x / (sigma * sigma))
	}
	vecmath.ScaleBlockInPlace(k, 1/vecmath.Sum(k))
	return k, nil
}

// smooth filters h with the given symmetric kernel, reflecting the data
// about its ends (d c b a | a b c d | d c b a) to fill the margins.
func smooth(h, kernel []float64) []float64 {
	radius := len(kernel) / 2
	n := len(h)

	padded := make([]float64, n+2*radius)
	for i := range padded {
		padded[i] = h[reflectIndex(i-radius, n)]
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = vecmath.DotProduct(padded[i:i+len(kernel)], kernel)
	}
	return out
}

func reflectIndex(i, n int) int {
	for i < 0 || i >= n {
		if i < 0 {
			i = -i - 1
		} else {
			i = 2*n - i - 1
		}
	}
	return i
}
