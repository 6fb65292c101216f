package main

import (
	"fmt"

	"github.com/casualjim/mozart/box"
	"github.com/casualjim/mozart/emitter"
	"github.com/casualjim/mozart/timer"
)

type result struct {
	Round   int
	Name    string
	Elapsed int64
	Unit    timer.Unit
	Times   int
}

type payload struct {
	Words [8]uint64
}

type runner struct {
	sc   scenario
	heap *box.Heap
	sw   *timer.Stopwatch
}

func newRunner(sc scenario) *runner {
	return &runner{
		sc: sc,
		heap: box.NewHeap(
			box.PoolCapacity(sc.Heap.Capacity),
			box.PoolPrewarm(sc.Heap.Prewarm),
		),
		sw: timer.New(),
	}
}

func (r *runner) round(n int) ([]result, error) {
	var results []result
	for _, mode := range r.sc.Emitters {
		elapsed, err := r.emitter(mode == "attentive")
		if err != nil {
			return results, err
		}
		results = append(results, r.result(n, "emitter/"+mode, elapsed))
	}
	for _, mode := range r.sc.Boxes {
		elapsed, err := r.box(mode)
		if err != nil {
			return results, err
		}
		results = append(results, r.result(n, "box/"+mode, elapsed))
	}
	return results, nil
}

func (r *runner) result(n int, name string, elapsed int64) result {
	return result{Round: n, Name: name, Elapsed: elapsed, Unit: r.sc.Unit, Times: r.sc.Times}
}

func (r *runner) emitter(attentive bool) (int64, error) {
	em := emitter.New(emitter.Attentive(attentive))
	if _, err := em.On("bench-1", func(x int) bool { return x >= 0 }); err != nil {
		return 0, err
	}
	if _, err := em.On("bench-2", func() bool { return true }); err != nil {
		return 0, err
	}

	var emitErr error
	elapsed := r.sw.Measure(func() {
		for i := range r.sc.Times {
			if emitErr = em.Emit("bench-1", i); emitErr != nil {
				return
			}
			if emitErr = em.Emit("bench-2"); emitErr != nil {
				return
			}
		}
	}, r.sc.Unit)
	return elapsed, emitErr
}

func (r *runner) box(mode string) (int64, error) {
	var (
		b   *box.Box
		set func(i int) error
	)
	switch mode {
	case "inline":
		b = box.New(nil)
		set = func(i int) error { return box.Set(b, i) }
	case "heap":
		b = box.New(nil)
		set = func(i int) error { return box.Set(b, payload{Words: [8]uint64{uint64(i)}}) }
	case "pooled":
		b = box.New(r.heap)
		set = func(i int) error { return box.Set(b, payload{Words: [8]uint64{uint64(i)}}) }
	default:
		return 0, fmt.Errorf("unknown box mode %q", mode)
	}
	defer b.Reset()

	var setErr error
	elapsed := r.sw.Measure(func() {
		for i := range r.sc.Times {
			if setErr = set(i); setErr != nil {
				return
			}
		}
	}, r.sc.Unit)
	return elapsed, setErr
}
