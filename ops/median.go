package ops

import "sort"

// Median widens to float64 and sorts a copy, the input is left untouched.
func Median[T Number](arr []T) float64 {
	n := len(arr)
	if n == 0 {
		return 0
	}
	cp := make([]float64, n)
	for i, v := range arr {
		cp[i] = float64(v)
	}
	sort.Float64s(cp)
	mid := n >> 1
	if n&1 == 0 {
		return (cp[mid-1] + cp[mid]) * 0.5
	}
	return cp[mid]
}
