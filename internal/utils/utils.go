package utils

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Float | constraints.Integer
}

func SumSlice[T Number](arr []T) (r T) {
	for i := range arr {
		r += arr[i]
	}
	return
}

func Average[T Number](s []T) (mean float64) {
	for i := range s {
		mean += float64(s[i])
	}
	mean /= float64(len(s))
	return
}

func MeanAndVariance[T Number](s []T, unbiased bool) (mean, variance float64) {
	mean = Average(s)
	for i := range s {
		variance += (float64(s[i]) - mean) * (float64(s[i]) - mean)
	}
	if unbiased {
		variance /= float64(len(s) - 1)
	} else {
		variance /= float64(len(s))
	}

	return
}

// Histogram counts values into n equal bins over [lo, hi). Values outside
// the range are dropped.
func Histogram[T Number](s []T, lo, hi float64, n int) []int {
	counts := make([]int, n)
	width := (hi - lo) / float64(n)
	for i := range s {
		bin := int(math.Floor((float64(s[i]) - lo) / width))
		if float64(s[i]) == hi {
			bin = n - 1
		}
		if 0 <= bin && bin < n {
			counts[bin]++
		}
	}
	return counts
}

func IntAbs(a int) int {
	if a < 0 {
		return -a
	} else {
		return a
	}

}

func Intersect(a, b []string) *string {
	for i := range a {
		if slices.Contains(b, a[i]) {
			return &a[i]
		}
	}
	return nil
}
