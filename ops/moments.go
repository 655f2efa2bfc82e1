package ops

import "math"

func Sum[T Number](arr []T) float64 {
	s := 0.0
	for _, v := range arr {
		s += float64(v)
	}
	return s
}

// Mean computes the average in a single pass. Zero for an empty slice,
// callers that need to distinguish check emptiness first.
func Mean[T Number](arr []T) float64 {
	n := len(arr)
	if n == 0 {
		return 0
	}
	return Sum(arr) / float64(n)
}

// SampleVariance uses the n-1 denominator. Zero when fewer than two
// values exist.
func SampleVariance[T Number](arr []T) float64 {
	n := float64(len(arr))
	if n < 2 {
		return 0
	}
	sum, sumSq := 0.0, 0.0
	for _, v := range arr {
		f := float64(v)
		sum += f
		sumSq += f * f
	}
	mean := sum / n
	return (sumSq - n*mean*mean) / (n - 1)
}

func SampleStd[T Number](arr []T) float64 {
	return math.Sqrt(SampleVariance(arr))
}
