// Package pool implements a bounded free-list allocator for values of a
// single type.
//
// An Allocator keeps up to Capacity spare slots. Alloc pops a spare slot when
// one is available and only asks its source for fresh memory when the list is
// empty. Free clears the value and pushes the slot back while there is room,
// otherwise the slot is dropped and left to the garbage collector. The list
// never grows beyond its capacity and half of it is filled eagerly on
// construction so the first allocations do not arrive in a burst.
//
// Example:
//
//	a := pool.New[payload](pool.Capacity(32))
//	p, err := a.Alloc(payload{ID: 1})
//	if err != nil {
//	    return err
//	}
//	defer a.Free(p)
//
// An Allocator is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves, as box.Heap does.
package pool
