// Package timer measures elapsed time in a chosen unit.
package timer

import (
	"context"
	"time"

	"github.com/fogfish/opts"
)

// Stopwatch measures the time passed since it was last reset. It is not safe
// for concurrent use.
type Stopwatch struct {
	now   func() time.Time
	start time.Time
}

// Clock replaces time.Now as the time source of a stopwatch.
var Clock = opts.ForName[Stopwatch, func() time.Time]("now")

// New returns a running stopwatch. It panics when an option fails to apply.
func New(options ...opts.Option[Stopwatch]) *Stopwatch {
	s := &Stopwatch{now: time.Now}
	if err := opts.Apply(s, options); err != nil {
		panic(err)
	}
	s.Reset()
	return s
}

// Reset restarts the stopwatch from now.
func (s *Stopwatch) Reset() {
	s.start = s.now()
}

// Since returns the time passed since the last reset.
func (s *Stopwatch) Since() time.Duration {
	return s.now().Sub(s.start)
}

// Elapsed returns the time passed since the last reset in whole units.
func (s *Stopwatch) Elapsed(unit Unit) int64 {
	return unit.Count(s.Since())
}

// Measure runs fn and returns how long it took in whole units. The stopwatch
// itself is not reset.
func (s *Stopwatch) Measure(fn func(), unit Unit) int64 {
	begin := s.now()
	fn()
	return unit.Count(s.now().Sub(begin))
}

// Delay sleeps for n units or until ctx is done, whichever comes first. It
// returns ctx.Err() when woken early.
func Delay(ctx context.Context, n int64, unit Unit) error {
	d := time.Duration(n) * unit.Duration()
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Default is the stopwatch behind the package level helpers. It starts when
// the program does.
var Default = New()

// Reset restarts Default.
func Reset() {
	Default.Reset()
}

// Elapsed returns the time passed since Default was reset.
func Elapsed(unit Unit) int64 {
	return Default.Elapsed(unit)
}

// Measure runs fn and returns how long it took in whole units.
func Measure(fn func(), unit Unit) int64 {
	return Default.Measure(fn, unit)
}
