package registry

import "github.com/alphadose/haxmap"

// Key is the set of key types a Registry can be indexed by.
type Key interface {
	~string | ~uintptr
}

// Registry is a concurrency safe keyed store.
type Registry[K Key, V any] interface {
	Get(key K) (V, bool)
	Add(key K, value V)
	GetOrAdd(key K, value func() V) (V, bool)
	Del(key K)
	Len() int
	ForEach(fn func(K, V) bool)
}

type registry[K Key, V any] struct {
	values *haxmap.Map[K, V]
}

func New[K Key, V any]() Registry[K, V] {
	return &registry[K, V]{
		values: haxmap.New[K, V](),
	}
}

func (r *registry[K, V]) Get(key K) (V, bool) {
	return r.values.Get(key)
}

func (r *registry[K, V]) Add(key K, value V) {
	r.values.Set(key, value)
}

// GetOrAdd returns the stored value for key, computing and storing it when
// absent. The boolean reports whether the value was already present.
func (r *registry[K, V]) GetOrAdd(key K, valueFn func() V) (V, bool) {
	return r.values.GetOrCompute(key, valueFn)
}

func (r *registry[K, V]) Del(key K) {
	r.values.Del(key)
}

func (r *registry[K, V]) Len() int {
	return int(r.values.Len())
}

func (r *registry[K, V]) ForEach(fn func(K, V) bool) {
	r.values.ForEach(fn)
}
