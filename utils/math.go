package utils

import "golang.org/x/exp/constraints"

// Min returns the smaller value between two numbers.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger value between two numbers.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Clamp limits x to the closed interval [lo, hi].
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	return Max(lo, Min(x, hi))
}

// Contains reports whether v is present in the slice.
func Contains[T comparable](slice []T, v T) bool {
	for _, s := range slice {
		if s == v {
			return true
		}
	}
	return false
}
