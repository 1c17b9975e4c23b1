package veb

import (
	"bytes"
	"fmt"
	"iter"
)

// default universe of a zero Tree.
const initSize = 1 << 8

// Tree is an ordered set of non-negative integers in [0, Universe()).
// Its zero value represents the empty set over a universe of 256 items.
//
// Insert, Delete, Contains, Predecessor and Successor take O(log log U)
// time, independent of the number of items.
//
// A Tree is not safe for concurrent use. Callers sharing one must guard
// every operation with a single lock for the whole Tree.
type Tree struct {
	root *node

	// number of item in set
	count int
}

// New return an empty Tree able to hold [0, valueRange).
// The universe is rounded up to a power of two, at least 2:
// New(5) holds [0,8), New(1) holds [0,2).
func New(valueRange uint64) (*Tree, error) {
	if valueRange < 1 || valueRange > MaxRange {
		return nil, ErrInvalidRange
	}
	return &Tree{root: newNode(universeBits(valueRange))}, nil
}

// MustNew is like New but panics if valueRange is invalid.
func MustNew(valueRange uint64, args ...uint64) *Tree {
	t, err := New(valueRange)
	if err != nil {
		panic(err)
	}
	if err = Adds(t, args...); err != nil {
		panic(err)
	}
	return t
}

func (t *Tree) init() *node {
	if t.root == nil {
		t.root = newNode(universeBits(initSize))
	}
	return t.root
}

// Universe return the universe size, always a power of two.
func (t *Tree) Universe() uint64 { return 1 << t.init().bits }

func (t *Tree) check(x uint64) error {
	if u := t.Universe(); x >= u {
		return outOfRange(x, u)
	}
	return nil
}

// Insert adds x to the set.
// inserted report x was not in the set before.
func (t *Tree) Insert(x uint64) (inserted bool, err error) {
	if err = t.check(x); err != nil {
		return false, err
	}
	if inserted = t.root.insert(x); inserted {
		t.count++
	}
	return inserted, nil
}

// Delete removes x from the set.
// deleted report x was in the set.
func (t *Tree) Delete(x uint64) (deleted bool, err error) {
	if err = t.check(x); err != nil {
		return false, err
	}
	if deleted = t.root.delete(x); deleted {
		t.count--
	}
	return deleted, nil
}

// Contains reports whether the set contains x.
func (t *Tree) Contains(x uint64) (bool, error) {
	if err := t.check(x); err != nil {
		return false, err
	}
	return t.root.contains(x), nil
}

// Predecessor return the largest item < x.
// ok is false if there is none.
func (t *Tree) Predecessor(x uint64) (p uint64, ok bool, err error) {
	if err = t.check(x); err != nil {
		return 0, false, err
	}
	p, ok = t.root.predecessor(x)
	return p, ok, nil
}

// Successor return the smallest item > x.
// ok is false if there is none.
func (t *Tree) Successor(x uint64) (s uint64, ok bool, err error) {
	if err = t.check(x); err != nil {
		return 0, false, err
	}
	s, ok = t.root.successor(x)
	return s, ok, nil
}

// Min return the smallest item, ok is false if the set is empty.
func (t *Tree) Min() (uint64, bool) {
	r := t.init()
	return r.min, r.occupied
}

// Max return the largest item, ok is false if the set is empty.
func (t *Tree) Max() (uint64, bool) {
	r := t.init()
	return r.max, r.occupied
}

// Len return the number of items in the set.
func (t *Tree) Len() int { return t.count }

// Empty reports whether the set has no item.
func (t *Tree) Empty() bool { return t.count == 0 }

// Clear removes all items, keeping the universe.
func (t *Tree) Clear() {
	t.root = newNode(t.init().bits)
	t.count = 0
}

// Nodes return the number of summary and cluster nodes allocated
// below the top level. It is 0 when the set holds at most two items.
func (t *Tree) Nodes() int { return t.init().nodes() }

// Range calls f sequentially for each item in ascending order.
// If f returns false, range stops the iteration.
//
// Each step is a successor query: O(N log log U) in total.
// The set must not be modified during Range.
func (t *Tree) Range(f func(x uint64) bool) {
	r := t.init()
	for x, ok := r.min, r.occupied; ok; x, ok = r.successor(x) {
		if !f(x) {
			return
		}
	}
}

// All return an iterator over the items in ascending order.
func (t *Tree) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		t.Range(yield)
	}
}

// Items return all items in ascending order.
func (t *Tree) Items() []uint64 {
	a := make([]uint64, 0, t.count)
	t.Range(func(x uint64) bool {
		a = append(a, x)
		return true
	})
	return a
}

// String returns the set as a string of the form "{1 2 3}".
func (t *Tree) String() string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	t.Range(func(x uint64) bool {
		if buf.Len() > len("{") {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%d", x)
		return true
	})
	buf.WriteByte('}')
	return buf.String()
}
