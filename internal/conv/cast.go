package conv

import (
	"fmt"
	"math"
	"math/bits"
)

// AddInt returns a+b for non-negative operands and reports whether the sum fits in int.
func AddInt(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// MulInt returns a*b for non-negative operands and reports whether the product fits in int.
func MulInt(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	hi, lo := bits.Mul(uint(a), uint(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}

// SaturatingAdd returns a+b clamped to math.MaxInt. Negative operands are treated as zero.
func SaturatingAdd(a, b int) int {
	a, b = max(a, 0), max(b, 0)
	if sum, ok := AddInt(a, b); ok {
		return sum
	}
	return math.MaxInt
}

// SaturatingMul returns a*b clamped to math.MaxInt. Negative operands are treated as zero.
func SaturatingMul(a, b int) int {
	a, b = max(a, 0), max(b, 0)
	if p, ok := MulInt(a, b); ok {
		return p
	}
	return math.MaxInt
}

// IntToInt64 converts a non-negative int to int64 safely.
func IntToInt64(v int) (int64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int64 (negative)", v)
	}
	return int64(v), nil
}

// UintptrToInt converts uintptr to int safely.
func UintptrToInt(v uintptr) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}
