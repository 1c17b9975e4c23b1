package veb

// common public function

// Adds add all x in args to the set.
// It stops at the first x outside the universe.
func Adds(t *Tree, args ...uint64) error {
	for _, x := range args {
		if _, err := t.Insert(x); err != nil {
			return err
		}
	}
	return nil
}

// Removes remove all x in args from the set.
// It stops at the first x outside the universe.
func Removes(t *Tree, args ...uint64) error {
	for _, x := range args {
		if _, err := t.Delete(x); err != nil {
			return err
		}
	}
	return nil
}

// Items return all items of t in ascending order.
func Items(t *Tree) []uint64 { return t.Items() }

// cursor walks a tree in ascending order by successor queries.
type cursor struct {
	n  *node
	x  uint64
	ok bool
}

func newCursor(t *Tree) *cursor {
	r := t.init()
	return &cursor{n: r, x: r.min, ok: r.occupied}
}

func (c *cursor) next() { c.x, c.ok = c.n.successor(c.x) }

type opFlag int

const (
	opUnion opFlag = iota
	opIntersect
	opDifference
	opComplement
)

// opUniverse return the universe of the result of s op t.
func opUniverse(s, t *Tree, flag opFlag) uint64 {
	a, b := s.Universe(), t.Universe()
	switch flag {
	case opIntersect:
		return min(a, b)
	case opDifference:
		return a
	default:
		return max(a, b)
	}
}

// merge walks s and t together, keeping items only in s (onlyS),
// in both (both) or only in t (onlyT).
// time complexity: O((N+M) log log U)
func merge(s, t *Tree, flag opFlag) *Tree {
	var onlyS, both, onlyT bool
	switch flag {
	case opUnion:
		onlyS, both, onlyT = true, true, true
	case opIntersect:
		both = true
	case opDifference:
		onlyS = true
	case opComplement:
		onlyS, onlyT = true, true
	}

	p := &Tree{root: newNode(universeBits(opUniverse(s, t, flag)))}
	add := func(x uint64) {
		if p.root.insert(x) {
			p.count++
		}
	}

	cs, ct := newCursor(s), newCursor(t)
	for cs.ok && ct.ok {
		switch {
		case cs.x == ct.x:
			if both {
				add(cs.x)
			}
			cs.next()
			ct.next()
		case cs.x < ct.x:
			if onlyS {
				add(cs.x)
			}
			cs.next()
		default:
			if onlyT {
				add(ct.x)
			}
			ct.next()
		}
	}
	for ; cs.ok && onlyS; cs.next() {
		add(cs.x)
	}
	for ; ct.ok && onlyT; ct.next() {
		add(ct.x)
	}
	return p
}

// Equal return set if equal, s <==> t.
// The universes may differ.
// worst time complexity: O(N log log U)
// best  time complexity: O(1)
func Equal(s, t *Tree) bool {
	if s.Len() != t.Len() {
		return false
	}
	cs, ct := newCursor(s), newCursor(t)
	for ; cs.ok && ct.ok; cs.next() {
		if cs.x != ct.x {
			return false
		}
		ct.next()
	}
	return cs.ok == ct.ok
}

// Union return the union set of s and t,
// over the larger universe of the two.
func Union(s, t *Tree) *Tree { return merge(s, t, opUnion) }

// Intersect return the intersection set of s and t,
// item in s and t, over the smaller universe of the two.
func Intersect(s, t *Tree) *Tree { return merge(s, t, opIntersect) }

// Difference return the difference set of s and t,
// item in s and not in t, over the universe of s.
func Difference(s, t *Tree) *Tree { return merge(s, t, opDifference) }

// Complement return the complement set of s and t,
// item in s but not in t, and not in s but in t.
// over the larger universe of the two.
func Complement(s, t *Tree) *Tree { return merge(s, t, opComplement) }
