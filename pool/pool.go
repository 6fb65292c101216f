package pool

import (
	"github.com/casualjim/mozart"
	"github.com/casualjim/mozart/pkg/stdx"
	"github.com/fogfish/opts"
)

// Stats counts what an allocator did since it was created.
type Stats struct {
	// Capacity is the maximum number of spare slots.
	Capacity int
	// Available is the number of spare slots right now.
	Available int
	// Fresh counts slots obtained from the source, prewarmed ones included.
	Fresh uint64
	// Reused counts allocations served from a spare slot.
	Reused uint64
	// Returned counts freed slots pushed back onto the list.
	Returned uint64
	// Dropped counts freed slots released because the list was full, plus
	// slots released by Drain.
	Dropped uint64
}

// Allocator is a bounded free-list of *T slots.
type Allocator[T any] struct {
	slots  []*T
	offset int
	source func() *T
	stats  Stats
}

// New creates an allocator that takes fresh slots from new(T).
// It panics when the options are invalid.
func New[T any](options ...opts.Option[Config]) *Allocator[T] {
	return NewWithSource(func() *T { return new(T) }, options...)
}

// NewWithSource creates an allocator that takes fresh slots from source.
// A source returning nil signals that memory is exhausted. It panics when the
// options are invalid.
func NewWithSource[T any](source func() *T, options ...opts.Option[Config]) *Allocator[T] {
	cfg, err := newConfig(options)
	if err != nil {
		panic(err)
	}

	a := &Allocator[T]{
		slots:  make([]*T, cfg.capacity),
		source: source,
	}
	for a.offset < cfg.prewarm {
		p := a.source()
		if p == nil {
			break
		}
		a.stats.Fresh++
		a.slots[a.offset] = p
		a.offset++
	}
	return a
}

// Alloc returns a slot holding v. Spare slots are used first.
func (a *Allocator[T]) Alloc(v T) (*T, error) {
	var p *T
	if a.offset > 0 {
		a.offset--
		p = a.slots[a.offset]
		a.slots[a.offset] = nil
		a.stats.Reused++
	} else {
		p = a.source()
		if p == nil {
			return nil, mozart.Throw(ErrAllocation)
		}
		a.stats.Fresh++
	}
	*p = v
	return p, nil
}

// Free clears *p and keeps the slot for reuse when there is room.
// p must not be used afterwards. Free(nil) does nothing.
func (a *Allocator[T]) Free(p *T) {
	if p == nil {
		return
	}
	*p = stdx.Zero[T]()
	if a.offset < len(a.slots) {
		a.slots[a.offset] = p
		a.offset++
		a.stats.Returned++
		return
	}
	a.stats.Dropped++
}

// Available returns the number of spare slots.
func (a *Allocator[T]) Available() int {
	return a.offset
}

// Cap returns the maximum number of spare slots.
func (a *Allocator[T]) Cap() int {
	return len(a.slots)
}

// Stats returns a snapshot of the allocator counters.
func (a *Allocator[T]) Stats() Stats {
	s := a.stats
	s.Capacity = len(a.slots)
	s.Available = a.offset
	return s
}

// Drain releases every spare slot and returns how many there were.
// The allocator stays usable.
func (a *Allocator[T]) Drain() int {
	n := a.offset
	for a.offset > 0 {
		a.offset--
		a.slots[a.offset] = nil
	}
	a.stats.Dropped += uint64(n)
	return n
}
