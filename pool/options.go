package pool

import (
	"fmt"

	"github.com/fogfish/opts"
)

// DefaultCapacity is the number of spare slots an allocator keeps when no
// Capacity option is given.
const DefaultCapacity = 16

// Config holds the tunables of an Allocator.
type Config struct {
	capacity int
	prewarm  int
}

var (
	// Capacity sets the maximum number of spare slots.
	Capacity = opts.ForName[Config, int]("capacity")

	// Prewarm sets how many slots are filled on construction. It is clamped
	// to the capacity. The default is half the capacity, rounded up.
	Prewarm = opts.ForName[Config, int]("prewarm")
)

func newConfig(options []opts.Option[Config]) (Config, error) {
	cfg := Config{
		capacity: DefaultCapacity,
		prewarm:  -1,
	}
	if err := opts.Apply(&cfg, options); err != nil {
		return Config{}, err
	}
	if cfg.capacity < 0 {
		return Config{}, fmt.Errorf("%w: capacity %d", ErrInvalidCapacity, cfg.capacity)
	}
	if cfg.prewarm < 0 {
		cfg.prewarm = (cfg.capacity + 1) / 2
	}
	cfg.prewarm = min(cfg.prewarm, cfg.capacity)
	return cfg, nil
}

// Resolve applies options on top of the defaults and validates the result.
func Resolve(options ...opts.Option[Config]) (Config, error) {
	return newConfig(options)
}
