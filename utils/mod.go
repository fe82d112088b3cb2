package utils

import "golang.org/x/exp/constraints"

func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Manhattan returns |x1-x2| + |y1-y2|.
func Manhattan[T constraints.Signed](x1, y1, x2, y2 T) T {
	return Abs(x1-x2) + Abs(y1-y2)
}

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}
