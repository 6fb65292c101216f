package timer

import (
	"fmt"
	"strings"
	"time"
)

// Unit is the resolution a duration is reported or given in.
type Unit uint8

const (
	Nanoseconds Unit = iota
	Microseconds
	Milliseconds
	Seconds
	Minutes
)

var unitNames = [...]string{
	Nanoseconds:  "ns",
	Microseconds: "us",
	Milliseconds: "ms",
	Seconds:      "s",
	Minutes:      "m",
}

// Duration returns the length of one unit.
func (u Unit) Duration() time.Duration {
	switch u {
	case Nanoseconds:
		return time.Nanosecond
	case Microseconds:
		return time.Microsecond
	case Milliseconds:
		return time.Millisecond
	case Seconds:
		return time.Second
	case Minutes:
		return time.Minute
	default:
		return 0
	}
}

// Count returns d in whole units, truncated toward zero.
func (u Unit) Count(d time.Duration) int64 {
	step := u.Duration()
	if step == 0 {
		return 0
	}
	return int64(d / step)
}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return fmt.Sprintf("Unit(%d)", uint8(u))
}

// ParseUnit accepts the short names returned by String as well as the long
// English names ("milliseconds", "minute", ...).
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ns", "nanosecond", "nanoseconds":
		return Nanoseconds, nil
	case "us", "µs", "microsecond", "microseconds":
		return Microseconds, nil
	case "ms", "millisecond", "milliseconds":
		return Milliseconds, nil
	case "s", "sec", "second", "seconds":
		return Seconds, nil
	case "m", "min", "minute", "minutes":
		return Minutes, nil
	default:
		return 0, fmt.Errorf("timer: unknown time unit %q", s)
	}
}

func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
