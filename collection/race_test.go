package collection

import (
	"encoding/json"
	"strconv"
	"sync"
	"testing"
	"time"
)

func TestRaceMutateTraverse(t *testing.T) {

	c := NewCollection("race", nil)

	var wg sync.WaitGroup
	wg.Add(3)

	start := time.Now()
	duration := 500 * time.Millisecond

	// Writer: grows and shrinks blocks all over the buffer
	go func() {
		defer wg.Done()
		i := 0
		for time.Since(start) < duration {
			b, err := c.AddBlock([]json.RawMessage{json.RawMessage(strconv.Itoa(i))})
			if err != nil {
				t.Error(err)
				return
			}
			if i%3 == 0 {
				if _, err := c.RemoveBlock(b.Handle); err != nil {
					t.Error(err)
					return
				}
			}
			i++
		}
	}()

	// Appender: always targets the first live block
	go func() {
		defer wg.Done()
		for time.Since(start) < duration {
			blocks := c.ListBlocks()
			if len(blocks) == 0 {
				continue
			}
			_, _ = c.AppendElement(blocks[0].Handle, json.RawMessage(`"x"`)) // may lose the race with a removal
		}
	}()

	// Reader
	go func() {
		defer wg.Done()
		for time.Since(start) < duration {
			n := 0
			c.Traverse(func(offset int, item json.RawMessage) bool {
				n++
				return true
			})
			_ = n
		}
	}()

	wg.Wait()

	total := 0
	for _, b := range c.ListBlocks() {
		if b.Offset != total {
			t.Fatalf("block %d: expected offset %d, got %d", b.Handle, total, b.Offset)
		}
		total += b.Length
	}
	if total != c.Size() {
		t.Fatalf("blocks cover %d elements, collection holds %d", total, c.Size())
	}
}
