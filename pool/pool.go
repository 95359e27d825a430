// Package pool packs many independently sized blocks of elements into one
// flat buffer. Every block is addressed by a Handle that stays valid while
// other blocks grow, shrink or disappear, so the whole pool can be iterated
// as a single contiguous slice without losing track of who owns what.
//
// A Pool is not safe for concurrent use. Callers sharing a pool must guard
// every mutating call, and every live iteration over View, with their own
// lock.
package pool

import (
	"fmt"
	"math"
	"slices"

	"github.com/google/btree"
)

// Handle identifies a block. Handles are issued by a counter starting at 0
// and are never reused until Clear.
type Handle uint32

// Location is the physical placement of a block inside the backing buffer.
type Location struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
}

// End returns the offset right after the last element of the block.
func (l Location) End() int {
	return l.Offset + l.Length
}

type slotState uint8

const (
	slotRemoved slotState = iota
	slotAlive
)

type slot struct {
	Location
	state slotState
}

// DefaultDegree is the btree degree used when Config leaves it unset.
const DefaultDegree = 32

// Config tunes a Pool. The zero value is an unbounded pool.
type Config struct {
	// MaxSize bounds the total number of elements, 0 means unbounded.
	MaxSize int
	// Degree of the btree holding the order list.
	Degree int
}

// Pool stores blocks of T back to back in a single slice.
type Pool[T any] struct {
	data []T

	// slots is indexed by handle value, its length is the handle counter
	slots []slot

	// order holds live handles in physical order. Blocks are only ever
	// appended at the end and never move relative to each other, so
	// physical order is ascending handle order.
	order *btree.BTreeG[Handle]

	config Config
}

// New returns an empty unbounded pool.
func New[T any]() *Pool[T] {
	return NewWithConfig[T](nil)
}

// NewWithConfig returns an empty pool, a nil config means defaults.
func NewWithConfig[T any](config *Config) *Pool[T] {

	c := Config{}
	if config != nil {
		c = *config
	}
	if c.Degree < 2 {
		c.Degree = DefaultDegree
	}

	return &Pool[T]{
		data:   []T{},
		slots:  []slot{},
		order:  btree.NewG(c.Degree, lessHandle),
		config: c,
	}
}

func lessHandle(a, b Handle) bool {
	return a < b
}

// AddBlock appends items at the end of the buffer as a new block.
func (p *Pool[T]) AddBlock(items []T) (Handle, error) {

	if uint64(len(p.slots)) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: no handles left", ErrCapacityExhausted)
	}
	if err := p.checkGrowth(len(items)); err != nil {
		return 0, err
	}

	h := Handle(len(p.slots))
	p.slots = append(p.slots, slot{
		Location: Location{
			Offset: len(p.data),
			Length: len(items),
		},
		state: slotAlive,
	})
	p.data = append(p.data, items...)
	p.order.ReplaceOrInsert(h)

	return h, nil
}

// AppendElement adds value at the end of block h.
func (p *Pool[T]) AppendElement(h Handle, value T) error {

	s, err := p.lookup(h)
	if err != nil {
		return err
	}
	if err := p.checkGrowth(1); err != nil {
		return err
	}

	if tail, _ := p.order.Max(); tail == h {
		p.data = append(p.data, value)
		s.Length++
		return nil
	}

	p.data = slices.Insert(p.data, s.End(), value)
	s.Length++
	p.repair(h, 1)

	return nil
}

// ReplaceBlock sets the whole content of block h to items. The block keeps
// its offset, an empty items leaves a live zero-length block.
func (p *Pool[T]) ReplaceBlock(h Handle, items []T) error {

	s, err := p.lookup(h)
	if err != nil {
		return err
	}

	delta := len(items) - s.Length
	if err := p.checkGrowth(delta); err != nil {
		return err
	}

	p.data = slices.Replace(p.data, s.Offset, s.End(), items...)
	s.Length = len(items)
	p.repair(h, delta)

	return nil
}

// RemoveBlock erases block h. The handle is never issued again until Clear.
func (p *Pool[T]) RemoveBlock(h Handle) error {

	s, err := p.lookup(h)
	if err != nil {
		return err
	}

	p.data = slices.Delete(p.data, s.Offset, s.End())
	p.repair(h, -s.Length)

	p.order.Delete(h)
	p.slots[h] = slot{state: slotRemoved}

	return nil
}

// Clear drops every block and restarts handle numbering.
func (p *Pool[T]) Clear() {
	clear(p.data)
	p.data = p.data[:0]
	p.slots = p.slots[:0]
	p.order.Clear(false)
}

// Size is the total number of elements across all blocks.
func (p *Pool[T]) Size() int {
	return len(p.data)
}

// Len is the number of live blocks.
func (p *Pool[T]) Len() int {
	return p.order.Len()
}

// Cap is the capacity of the backing buffer.
func (p *Pool[T]) Cap() int {
	return cap(p.data)
}

// Reserve makes room for at least capacity elements, clamped to MaxSize on
// bounded pools. It is a hint: it never fails and never shrinks. The
// backing buffer may move, handles and content do not change.
func (p *Pool[T]) Reserve(capacity int) error {

	if p.config.MaxSize > 0 && capacity > p.config.MaxSize {
		capacity = p.config.MaxSize
	}

	if capacity > cap(p.data) {
		p.data = slices.Grow(p.data, capacity-len(p.data))
	}

	return nil
}

// View returns the whole pool as one slice, blocks in physical order. It is
// only valid until the next mutating call.
func (p *Pool[T]) View() []T {
	return p.data
}

// Block returns the elements of block h as a sub-slice of View. Appending to
// it never overwrites the following block.
func (p *Pool[T]) Block(h Handle) ([]T, error) {

	s, err := p.lookup(h)
	if err != nil {
		return nil, err
	}

	return p.data[s.Offset:s.End():s.End()], nil
}

func (p *Pool[T]) Location(h Handle) (Location, error) {

	s, err := p.lookup(h)
	if err != nil {
		return Location{}, err
	}

	return s.Location, nil
}

// Tail returns the live handle whose block is physically last.
func (p *Pool[T]) Tail() (Handle, bool) {
	return p.order.Max()
}

// Traverse calls f for every live block in physical order until f returns
// false.
func (p *Pool[T]) Traverse(f func(h Handle, l Location) bool) {
	p.order.Ascend(func(h Handle) bool {
		return f(h, p.slots[h].Location)
	})
}

func (p *Pool[T]) lookup(h Handle) (*slot, error) {

	if int(h) >= len(p.slots) || p.slots[h].state != slotAlive {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}

	return &p.slots[h], nil
}

func (p *Pool[T]) checkGrowth(n int) error {

	if n <= 0 || p.config.MaxSize <= 0 {
		return nil
	}

	if len(p.data)+n > p.config.MaxSize {
		return fmt.Errorf("%w: %d elements over max size %d", ErrCapacityExhausted, len(p.data)+n, p.config.MaxSize)
	}

	return nil
}

// repair shifts the offset of every block after h by delta.
func (p *Pool[T]) repair(h Handle, delta int) {

	if delta == 0 {
		return
	}

	p.order.AscendGreaterOrEqual(h, func(other Handle) bool {
		if other != h {
			p.slots[other].Offset += delta
		}
		return true
	})
}
