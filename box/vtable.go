package box

import (
	"reflect"
	"unsafe"

	"github.com/casualjim/mozart/internal/registry"
	"github.com/casualjim/mozart/pkg/reflectx"
)

// vtable holds the operations a Box needs once the static type of its value
// is gone. load only serves diagnostics.
type vtable struct {
	id        TypeID
	size      uintptr
	inlinable bool

	destroy     func(b *Box)
	cloneInline func(dst, src *Box)
	cloneHeap   func(dst, src *Box) error
	load        func(b *Box) any
}

var vtables = registry.New[uintptr, *vtable]()

func vtableOf[T any]() *vtable {
	vt, _ := vtables.GetOrAdd(reflectx.TypeKey(reflect.TypeFor[T]()), newVtable[T])
	return vt
}

func newVtable[T any]() *vtable {
	t := reflect.TypeFor[T]()
	clone := cloneFunc[T](t)

	return &vtable{
		id:   TypeID{t: t},
		size: t.Size(),
		inlinable: t.Size() <= InlineCapacity &&
			uintptr(t.Align()) <= unsafe.Alignof(uintptr(0)) &&
			!reflectx.HasPointers(t),

		destroy: func(b *Box) {
			switch b.storage {
			case StorageInline:
				b.inline = [3]uintptr{}
			case StorageHeap:
				heapFree(b.owner, (*T)(b.ptr))
				b.ptr = nil
				b.owner = nil
			}
		},
		cloneInline: func(dst, src *Box) {
			*inlineRef[T](dst) = clone(*(*T)(src.payload()))
		},
		cloneHeap: func(dst, src *Box) error {
			p, err := heapAlloc(dst.heap, clone(*(*T)(src.payload())))
			if err != nil {
				return err
			}
			dst.ptr = unsafe.Pointer(p)
			dst.owner = dst.heap
			return nil
		},
		load: func(b *Box) any {
			return *(*T)(b.payload())
		},
	}
}

// fitsInline reports whether a box on h stores values of this type inline.
func (vt *vtable) fitsInline(h *Heap) bool {
	return vt.inlinable && vt.size <= h.Threshold()
}

func cloneFunc[T any](t reflect.Type) func(T) T {
	if !t.Implements(reflect.TypeFor[Cloner[T]]()) {
		return func(v T) T { return v }
	}
	return func(v T) T {
		// an interface T may hold nil
		if c, ok := any(v).(Cloner[T]); ok {
			return c.Clone()
		}
		return v
	}
}

func inlineRef[T any](b *Box) *T {
	return (*T)(unsafe.Pointer(&b.inline))
}
