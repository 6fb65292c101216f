package box

import "testing"

func BenchmarkSet(b *testing.B) {
	b.Run("inline", func(b *testing.B) {
		bx := New(nil)
		b.ReportAllocs()
		for i := range b.N {
			if err := Set(bx, i); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("heap/plain", func(b *testing.B) {
		bx := New(nil)
		b.ReportAllocs()
		for i := range b.N {
			if err := Set(bx, wide{Words: [8]uint64{uint64(i)}}); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("heap/pooled", func(b *testing.B) {
		bx := New(NewHeap())
		b.ReportAllocs()
		for i := range b.N {
			if err := Set(bx, wide{Words: [8]uint64{uint64(i)}}); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkCopyFrom(b *testing.B) {
	heap := NewHeap()
	src, err := Of(heap, wide{})
	if err != nil {
		b.Fatal(err)
	}
	dst := New(heap)
	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		if err := dst.CopyFrom(src); err != nil {
			b.Fatal(err)
		}
	}
}
