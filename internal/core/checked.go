package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow reports that a step count, position or summary left the int64
// range. Supported targets are 0 through math.MaxInt64.
var ErrOverflow = errors.New("int64 overflow")

// AddInt64 returns a+b or ErrOverflow.
func AddInt64(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%d + %d: %w", a, b, ErrOverflow)
	}
	return a + b, nil
}

// MulInt64 returns a*b or ErrOverflow.
func MulInt64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, fmt.Errorf("%d * %d: %w", a, b, ErrOverflow)
	}
	return p, nil
}
