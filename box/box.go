package box

import (
	"unsafe"

	"github.com/casualjim/mozart"
	"github.com/casualjim/mozart/pkg/stdx"
)

// Box holds at most one value of a type chosen at run time.
// The zero Box is empty and allocates heap values without pooling.
type Box struct {
	_ noCopy

	storage Storage
	inline  [3]uintptr
	ptr     unsafe.Pointer
	// owner is the heap ptr was taken from; it moves along with the value.
	owner *Heap
	vt    *vtable

	heap *Heap
}

// Cloner is implemented by values that need more than an assignment to be
// copied, for example because they hold a slice or map that must not be
// shared between boxes.
type Cloner[T any] interface {
	Clone() T
}

// New returns an empty box whose heap values come from heap, which may be nil.
func New(heap *Heap) *Box {
	return &Box{heap: heap}
}

// Of returns a box holding v.
func Of[T any](heap *Heap, v T) (*Box, error) {
	b := New(heap)
	if err := Set(b, v); err != nil {
		return nil, err
	}
	return b, nil
}

// Set releases the current value of b and stores v instead. References
// obtained from Ref before the call must not be used anymore.
func Set[T any](b *Box, v T) error {
	b.Reset()

	vt := vtableOf[T]()
	if vt.fitsInline(b.heap) {
		*inlineRef[T](b) = v
		b.storage = StorageInline
	} else {
		p, err := heapAlloc(b.heap, v)
		if err != nil {
			return err
		}
		b.ptr = unsafe.Pointer(p)
		b.owner = b.heap
		b.storage = StorageHeap
	}
	b.vt = vt
	return nil
}

// Ref returns a pointer to the value held by b, valid until the value is
// replaced or released. It fails with a *TypeError when b is empty or holds
// a value of another type.
func Ref[T any](b *Box) (*T, error) {
	want := TypeIDOf[T]()
	if have := b.TypeOf(); have != want {
		return nil, mozart.Throw(&TypeError{Want: want, Have: have})
	}
	return (*T)(b.payload()), nil
}

// Get returns a copy of the value held by b. It fails like Ref.
func Get[T any](b *Box) (T, error) {
	p, err := Ref[T](b)
	if err != nil {
		return stdx.Zero[T](), err
	}
	return *p, nil
}

// MustGet is Get but panics on error.
func MustGet[T any](b *Box) T {
	return stdx.Must1(Get[T](b))
}

// Holds reports whether b holds a value of type T.
func Holds[T any](b *Box) bool {
	return b.TypeOf() == TypeIDOf[T]()
}

// TypeOf returns the type of the held value, Void when b is empty.
func (b *Box) TypeOf() TypeID {
	if b.vt == nil {
		return Void
	}
	return b.vt.id
}

// Storage reports where the held value lives.
func (b *Box) Storage() Storage {
	return b.storage
}

// IsEmpty reports whether b holds no value.
func (b *Box) IsEmpty() bool {
	return b.storage == StorageEmpty
}

// Heap returns the heap new values of b are allocated from.
func (b *Box) Heap() *Heap {
	return b.heap
}

// Reset releases the held value and leaves b empty. A heap slot goes back to
// the pool it came from.
func (b *Box) Reset() {
	if b.vt != nil {
		b.vt.destroy(b)
	}
	b.storage = StorageEmpty
	b.vt = nil
}

// CopyFrom replaces the value of b with a copy of the value of other. The
// copy is stored the way Set would store it on the heap of b, so the inline
// threshold of b decides between its inline buffer and a new heap slot.
// Copying an empty box empties b. On error b is left empty.
func (b *Box) CopyFrom(other *Box) error {
	if b == other {
		return nil
	}
	b.Reset()
	if other.storage == StorageEmpty {
		return nil
	}

	vt := other.vt
	if vt.fitsInline(b.heap) {
		vt.cloneInline(b, other)
		b.storage = StorageInline
	} else {
		if err := vt.cloneHeap(b, other); err != nil {
			return err
		}
		b.storage = StorageHeap
	}
	b.vt = vt
	return nil
}

// MoveFrom releases the value of b and takes over the value of other, which
// ends up empty. Nothing is copied or allocated: a heap value keeps its slot.
func (b *Box) MoveFrom(other *Box) {
	if b == other {
		return
	}
	b.Reset()
	b.Swap(other)
}

// Swap exchanges the values of b and other. Each box keeps its own heap for
// future values.
func (b *Box) Swap(other *Box) {
	b.storage, other.storage = other.storage, b.storage
	b.inline, other.inline = other.inline, b.inline
	b.ptr, other.ptr = other.ptr, b.ptr
	b.owner, other.owner = other.owner, b.owner
	b.vt, other.vt = other.vt, b.vt
}

// Clone returns a new box on the same heap holding a copy of the value of b.
func (b *Box) Clone() (*Box, error) {
	c := New(b.heap)
	if err := c.CopyFrom(b); err != nil {
		return nil, err
	}
	return c, nil
}

func (b *Box) payload() unsafe.Pointer {
	switch b.storage {
	case StorageInline:
		return unsafe.Pointer(&b.inline)
	case StorageHeap:
		return b.ptr
	default:
		return nil
	}
}
