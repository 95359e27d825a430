package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fulldump/inceptionpool/pool"
)

var ErrInvalidElement = errors.New("invalid element")

// Collection is a named pool of JSON elements safe for concurrent use.
type Collection struct {
	Id        string
	Name      string
	CreatedAt time.Time

	pool  *pool.Pool[json.RawMessage]
	mutex *sync.RWMutex
}

type Block struct {
	Handle pool.Handle       `json:"handle"`
	Offset int               `json:"offset"`
	Length int               `json:"length"`
	Items  []json.RawMessage `json:"items,omitempty"`
}

func NewCollection(name string, config *pool.Config) *Collection {
	return &Collection{
		Id:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
		pool:      pool.NewWithConfig[json.RawMessage](config),
		mutex:     &sync.RWMutex{},
	}
}

func (c *Collection) AddBlock(items []json.RawMessage) (*Block, error) {

	items, err := normalize(items)
	if err != nil {
		return nil, err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	h, err := c.pool.AddBlock(items)
	if err != nil {
		return nil, err
	}

	return c.block(h, false)
}

func (c *Collection) AppendElement(h pool.Handle, item json.RawMessage) (*Block, error) {

	items, err := normalize([]json.RawMessage{item})
	if err != nil {
		return nil, err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	err = c.pool.AppendElement(h, items[0])
	if err != nil {
		return nil, err
	}

	return c.block(h, false)
}

func (c *Collection) ReplaceBlock(h pool.Handle, items []json.RawMessage) (*Block, error) {

	items, err := normalize(items)
	if err != nil {
		return nil, err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	err = c.pool.ReplaceBlock(h, items)
	if err != nil {
		return nil, err
	}

	return c.block(h, false)
}

// RemoveBlock returns the block as it was right before removal.
func (c *Collection) RemoveBlock(h pool.Handle) (*Block, error) {

	c.mutex.Lock()
	defer c.mutex.Unlock()

	removed, err := c.block(h, true)
	if err != nil {
		return nil, err
	}

	err = c.pool.RemoveBlock(h)
	if err != nil {
		return nil, err
	}

	return removed, nil
}

func (c *Collection) GetBlock(h pool.Handle) (*Block, error) {

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.block(h, true)
}

// ListBlocks returns every block location in physical order, without items.
func (c *Collection) ListBlocks() []*Block {

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	result := make([]*Block, 0, c.pool.Len())
	c.pool.Traverse(func(h pool.Handle, l pool.Location) bool {
		result = append(result, &Block{
			Handle: h,
			Offset: l.Offset,
			Length: l.Length,
		})
		return true
	})

	return result
}

func (c *Collection) Clear() {
	c.mutex.Lock()
	c.pool.Clear()
	c.mutex.Unlock()
}

func (c *Collection) Reserve(capacity int) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.pool.Reserve(capacity)
}

func (c *Collection) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.pool.Size()
}

func (c *Collection) Blocks() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.pool.Len()
}

func (c *Collection) Capacity() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.pool.Cap()
}

// Traverse iterates the contiguous view holding a read lock, f must not call
// back into the collection.
func (c *Collection) Traverse(f func(offset int, item json.RawMessage) bool) {

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	for i, item := range c.pool.View() {
		if !f(i, item) {
			return
		}
	}
}

func (c *Collection) block(h pool.Handle, withItems bool) (*Block, error) {

	l, err := c.pool.Location(h)
	if err != nil {
		return nil, err
	}

	result := &Block{
		Handle: h,
		Offset: l.Offset,
		Length: l.Length,
	}

	if withItems {
		items, err := c.pool.Block(h)
		if err != nil {
			return nil, err
		}
		result.Items = slices.Clone(items)
	}

	return result, nil
}

// normalize validates and compacts every item so the pool only ever holds
// well formed JSON.
func normalize(items []json.RawMessage) ([]json.RawMessage, error) {

	result := make([]json.RawMessage, len(items))
	for i, item := range items {
		if !json.Valid(item) {
			return nil, fmt.Errorf("%w: item %d is not valid JSON", ErrInvalidElement, i)
		}
		compacted, err := compact(item)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %s", ErrInvalidElement, i, err.Error())
		}
		result[i] = compacted
	}

	return result, nil
}
