package minheap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hillpath/minheap"
)

// BenchmarkPushPop measures a push of n random ints followed by n pops.
func BenchmarkPushPop(b *testing.B) {
	const n = 10000
	r := rand.New(rand.NewSource(42))
	values := make([]int, n)
	for i := range values {
		values[i] = r.Int()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := minheap.WithCapacity(n, func(a, b int) bool { return a < b })
		for _, v := range values {
			h.Push(v)
		}
		for !h.IsEmpty() {
			h.Pop()
		}
	}
}

// BenchmarkFrom measures bulk construction of n random ints.
func BenchmarkFrom(b *testing.B) {
	const n = 10000
	r := rand.New(rand.NewSource(42))
	values := make([]int, n)
	for i := range values {
		values[i] = r.Int()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = minheap.FromOrdered(values...)
	}
}
