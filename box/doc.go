// Package box implements Box, a container for a single value whose type is
// only known at run time.
//
// A Box is empty or holds exactly one value. The type of that value is fixed
// when it is stored and can only change by storing a different value, which
// first releases the old one. Retrieval is type checked: asking for a type
// other than the stored one fails with ErrTypeMismatch, asking an empty box
// fails with ErrEmptyAccess.
//
// Small values are stored inline, inside the Box itself, without any
// allocation. A value goes inline when its type is at most InlineThreshold
// bytes wide (InlineCapacity by default) and holds no pointers, so the garbage
// collector never has to look inside the inline buffer. Everything else is
// stored in a heap slot obtained from a Heap, which keeps one bounded
// pool.Allocator per payload type and recycles slots as boxes are reset. A nil
// *Heap allocates every slot fresh and leaves released slots to the garbage
// collector.
//
//	heap := box.NewHeap(box.PoolCapacity(32))
//	b, err := box.Of(heap, 42)
//	if err != nil {
//	    return err
//	}
//	n, _ := box.Get[int](b)        // 42
//	_, err = box.Get[float64](b)   // ErrTypeMismatch
//	b.Reset()                      // heap slots go back to their pool
//
// Once its type is erased a stored value is handled through a small table of
// operations built once per type: report the type, destroy, clone into an
// inline buffer and clone into a fresh heap slot. Values implementing Cloner
// are copied through their Clone method, everything else with a plain Go
// assignment.
//
// A Box must not be copied by value; use CopyFrom, MoveFrom or Clone. Boxes
// are not safe for concurrent use, a Heap is.
package box
