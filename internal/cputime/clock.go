package cputime

import (
	"errors"
	"fmt"
	"runtime"
	"time"
)

// ErrUnsupportedClock is returned when the platform cannot read the requested clock.
var ErrUnsupportedClock = errors.New("clock not supported on this platform")

// Kind selects the clock used for a measurement.
type Kind string

const (
	Process Kind = "process"
	Thread  Kind = "thread"
	Wall    Kind = "wall"
)

// ParseKind validates a clock name. An empty string selects Process.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case "":
		return Process, nil
	case Process, Thread, Wall:
		return k, nil
	default:
		return "", fmt.Errorf("invalid clock '%s': must be 'process', 'thread', or 'wall'", s)
	}
}

// Clock reads a monotonically increasing duration.
type Clock interface {
	Now() (time.Duration, error)
	Kind() Kind
}

// New returns the clock for k.
func New(k Kind) (Clock, error) {
	switch k {
	case Process, "":
		return processClock{}, nil
	case Thread:
		return threadClock{}, nil
	case Wall:
		return newWallClock(), nil
	default:
		return nil, fmt.Errorf("invalid clock '%s'", k)
	}
}

// Measure runs fn and returns the time it took on c. For the thread clock the
// calling goroutine is pinned to its OS thread for the duration of the call.
func Measure(c Clock, fn func()) (time.Duration, error) {
	if c.Kind() == Thread {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
	}

	start, err := c.Now()
	if err != nil {
		return 0, err
	}
	fn()
	end, err := c.Now()
	if err != nil {
		return 0, err
	}
	return end - start, nil
}

type wallClock struct {
	origin time.Time
}

func newWallClock() wallClock {
	return wallClock{origin: time.Now()}
}

func (w wallClock) Now() (time.Duration, error) { return time.Since(w.origin), nil }
func (wallClock) Kind() Kind                    { return Wall }

type processClock struct{}

func (processClock) Now() (time.Duration, error) { return readClock(Process) }
func (processClock) Kind() Kind                  { return Process }

type threadClock struct{}

func (threadClock) Now() (time.Duration, error) { return readClock(Thread) }
func (threadClock) Kind() Kind                  { return Thread }
