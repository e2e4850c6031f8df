package queue

import (
	"fmt"
	"sync"
	"testing"
)

// BenchmarkQueue_PushPop benchmarks uncontended single-goroutine throughput
func BenchmarkQueue_PushPop(b *testing.B) {
	q := New[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Push(i)
		q.Pop()
	}
}

// BenchmarkQueue_Contended benchmarks the queue under the shape of load the
// pipeline produces: one producer feeding a set of competing consumers
func BenchmarkQueue_Contended(b *testing.B) {
	consumerCounts := []int{1, 2, 4, 8}

	for _, consumers := range consumerCounts {
		b.Run(fmt.Sprintf("consumers_%d", consumers), func(b *testing.B) {
			q := New[int]()

			var wg sync.WaitGroup
			pops := make(chan struct{}, b.N)
			for i := 0; i < b.N; i++ {
				pops <- struct{}{}
			}
			close(pops)

			b.ResetTimer()
			for c := 0; c < consumers; c++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for range pops {
						q.Pop()
					}
				}()
			}

			for i := 0; i < b.N; i++ {
				q.Push(i)
			}
			wg.Wait()
		})
	}
}

// BenchmarkQueue_PushOnly measures enqueue cost including slice growth and
// the post-drain compaction bookkeeping
func BenchmarkQueue_PushOnly(b *testing.B) {
	q := New[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Push(i)
	}
}
