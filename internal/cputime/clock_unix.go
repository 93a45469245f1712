//go:build linux || darwin || freebsd

package cputime

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

func readClock(k Kind) (time.Duration, error) {
	id := int32(unix.CLOCK_PROCESS_CPUTIME_ID)
	if k == Thread {
		id = unix.CLOCK_THREAD_CPUTIME_ID
	}

	var ts unix.Timespec
	if err := unix.ClockGettime(id, &ts); err != nil {
		return 0, fmt.Errorf("reading %s clock: %w", k, err)
	}
	return time.Duration(ts.Nano()), nil
}
