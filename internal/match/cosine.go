package match

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Cosine returns the cosine similarity between two vectors. A zero-length or
// zero-magnitude vector yields 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	x := toFloat64(a)
	y := toFloat64(b)

	normX := math.Sqrt(floats.Dot(x, x))
	normY := math.Sqrt(floats.Dot(y, y))
	if normX == 0 || normY == 0 {
		return 0
	}

	return floats.Dot(x, y) / (normX * normY)
}

func toFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	return out
}
