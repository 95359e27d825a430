package pool

import (
	"math/rand"
	"testing"
)

func BenchmarkPool_AppendTail(b *testing.B) {

	p := New[int]()
	h, _ := p.AddBlock(nil)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.AppendElement(h, i)
	}
}

// BenchmarkPool_AppendMixed appends to random blocks, most of them are not the
// tail so every call pays for the splice and the repair walk.
func BenchmarkPool_AppendMixed(b *testing.B) {

	const blocks = 1_000

	p := New[int]()
	handles := make([]Handle, blocks)
	for i := range handles {
		handles[i], _ = p.AddBlock([]int{i, i, i, i})
	}

	r := rand.New(rand.NewSource(1))
	picks := make([]int, b.N)
	for i := range picks {
		picks[i] = r.Intn(blocks)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.AppendElement(handles[picks[i]], i)
	}
}

func BenchmarkPool_View(b *testing.B) {

	p := New[int]()
	for i := 0; i < 10_000; i++ {
		p.AddBlock([]int{i, i + 1, i + 2})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sum := 0
		for _, v := range p.View() {
			sum += v
		}
		_ = sum
	}
}
