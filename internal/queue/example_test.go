package queue_test

import (
	"fmt"
	"sync"

	"github.com/wraxau/AC-laba3/internal/queue"
)

// Example demonstrates the producer/consumer handshake the queue exists for:
// the producer pushes its items followed by one sentinel per consumer, and
// every consumer drains work until it pops a sentinel
func Example() {
	q := queue.New[string]()

	const consumers = 2
	files := []string{"cat.jpg", "dog.png", "tree.jpeg"}

	go func() {
		for _, f := range files {
			q.Push(f)
		}
		for i := 0; i < consumers; i++ {
			q.Push("") // sentinel: stop one consumer
		}
	}()

	var processed sync.Map
	var wg sync.WaitGroup
	for i := 0; i < consumers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				item := q.Pop()
				if item == "" {
					return
				}
				processed.Store(item, true)
			}
		}()
	}
	wg.Wait()

	for _, f := range files {
		if _, ok := processed.Load(f); ok {
			fmt.Printf("processed %s\n", f)
		}
	}
	fmt.Printf("left in queue: %d\n", q.Len())
	// Output:
	// processed cat.jpg
	// processed dog.png
	// processed tree.jpeg
	// left in queue: 0
}
