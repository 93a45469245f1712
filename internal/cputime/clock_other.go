//go:build !linux && !darwin && !freebsd

package cputime

import (
	"fmt"
	"time"
)

func readClock(k Kind) (time.Duration, error) {
	return 0, fmt.Errorf("%s clock: %w", k, ErrUnsupportedClock)
}
