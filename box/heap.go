package box

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/casualjim/mozart/internal/registry"
	"github.com/casualjim/mozart/pkg/reflectx"
	"github.com/casualjim/mozart/pkg/slogx"
	"github.com/casualjim/mozart/pool"
	"github.com/fogfish/opts"
)

// Heap provides the heap slots of boxes. It lazily creates one
// pool.Allocator per payload type and is safe for concurrent use.
//
// A nil *Heap is valid: slots are allocated with new and released slots are
// left to the garbage collector.
type Heap struct {
	mu        sync.Mutex
	capacity  int
	prewarm   int
	limit     int
	threshold uintptr
	pools     registry.Registry[uintptr, typedPool]
}

var (
	// PoolCapacity sets the capacity of every per-type pool, see pool.Capacity.
	PoolCapacity = opts.ForName[Heap, int]("capacity")

	// PoolPrewarm sets how many slots a per-type pool fills when it is
	// created, see pool.Prewarm.
	PoolPrewarm = opts.ForName[Heap, int]("prewarm")

	// PoolLimit caps the number of fresh slots a per-type pool takes over its
	// lifetime, prewarmed ones included. Once they are spent only slots
	// returned to the pool are handed out again and storing another value on
	// the heap fails with ErrAllocation. 0, the default, means no limit.
	PoolLimit = opts.ForName[Heap, int]("limit")

	// InlineThreshold sets the largest value size stored inline. Values
	// above InlineCapacity are clamped, 0 stores every value on the heap.
	InlineThreshold = opts.ForName[Heap, uintptr]("threshold")
)

// NewHeap creates a heap. It panics when the options are invalid.
func NewHeap(options ...opts.Option[Heap]) *Heap {
	h := &Heap{
		capacity:  pool.DefaultCapacity,
		prewarm:   -1,
		threshold: InlineCapacity,
		pools:     registry.New[uintptr, typedPool](),
	}
	if err := opts.Apply(h, options); err != nil {
		panic(err)
	}
	if _, err := pool.Resolve(h.poolOptions()...); err != nil {
		panic(err)
	}
	if h.limit < 0 {
		panic(fmt.Errorf("box: pool limit must not be negative, got %d", h.limit))
	}
	h.threshold = min(h.threshold, InlineCapacity)
	return h
}

func (h *Heap) poolOptions() []opts.Option[pool.Config] {
	return []opts.Option[pool.Config]{
		pool.Capacity(h.capacity),
		pool.Prewarm(h.prewarm),
	}
}

// Threshold returns the largest value size a box on this heap stores inline.
func (h *Heap) Threshold() uintptr {
	if h == nil {
		return InlineCapacity
	}
	return h.threshold
}

// PoolStats are the counters of the pool serving one payload type.
type PoolStats struct {
	Type string
	pool.Stats
}

// Stats returns the counters of every pool created so far, sorted by type name.
func (h *Heap) Stats() []PoolStats {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	stats := make([]PoolStats, 0, h.pools.Len())
	h.pools.ForEach(func(_ uintptr, p typedPool) bool {
		stats = append(stats, PoolStats{Type: p.typeName(), Stats: p.stats()})
		return true
	})
	slices.SortFunc(stats, func(a, b PoolStats) int {
		return strings.Compare(a.Type, b.Type)
	})
	return stats
}

// StatsOf returns the counters of the pool serving T. The second result is
// false when no value of type T was stored on the heap yet.
func StatsOf[T any](h *Heap) (pool.Stats, bool) {
	if h == nil {
		return pool.Stats{}, false
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	p, ok := h.pools.Get(reflectx.TypeKey(reflect.TypeFor[T]()))
	if !ok {
		return pool.Stats{}, false
	}
	return p.stats(), true
}

// Close releases the spare slots of every pool. Boxes still holding heap
// values keep them and return them to their pool when reset, so the heap
// stays usable.
func (h *Heap) Close() {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	released := 0
	h.pools.ForEach(func(_ uintptr, p typedPool) bool {
		released += p.drain()
		return true
	})
	slog.Debug("heap closed",
		slogx.LoggerName("box"),
		slog.Int("pools", h.pools.Len()),
		slog.Int("released", released),
	)
}

type typedPool interface {
	typeName() string
	stats() pool.Stats
	drain() int
}

type typedAllocator[T any] struct {
	*pool.Allocator[T]
	name string
}

func (a *typedAllocator[T]) typeName() string  { return a.name }
func (a *typedAllocator[T]) stats() pool.Stats { return a.Stats() }
func (a *typedAllocator[T]) drain() int        { return a.Drain() }

// allocatorOf must be called with h.mu held.
func allocatorOf[T any](h *Heap) *typedAllocator[T] {
	t := reflect.TypeFor[T]()
	p, loaded := h.pools.GetOrAdd(reflectx.TypeKey(t), func() typedPool {
		return &typedAllocator[T]{
			Allocator: pool.NewWithSource(limitedSource[T](h.limit), h.poolOptions()...),
			name:      reflectx.TypeName(t),
		}
	})
	if !loaded {
		slog.Debug("created heap pool",
			slogx.LoggerName("box"),
			slogx.Type("type", t),
			slog.Int("capacity", h.capacity),
			slog.Int("limit", h.limit),
		)
	}
	return p.(*typedAllocator[T])
}

// limitedSource returns a slot source that gives out at most limit slots,
// any number when limit is 0. Callers serialize on h.mu.
func limitedSource[T any](limit int) func() *T {
	if limit == 0 {
		return func() *T { return new(T) }
	}
	made := 0
	return func() *T {
		if made >= limit {
			return nil
		}
		made++
		return new(T)
	}
}

func heapAlloc[T any](h *Heap, v T) (*T, error) {
	if h == nil {
		p := new(T)
		*p = v
		return p, nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return allocatorOf[T](h).Alloc(v)
}

func heapFree[T any](h *Heap, p *T) {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	allocatorOf[T](h).Free(p)
}
