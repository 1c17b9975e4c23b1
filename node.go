package veb

// node is a van Emde Boas structure over a universe of 1<<bits items.
// Its zero value (with bits set) represents the empty set.
//
// min and max are cached out of the recursive state: a cluster never
// holds the node's own min or max, so a singleton (min==max) or a pair
// with no summary is answered without touching clusters.
//
// summary and clusters are created on the first insert that needs them
// and dropped the moment they become empty, keeping the node graph
// proportional to the number of items, not to the universe.
type node struct {
	// log2 of the universe size, fixed at construction
	bits uint8

	// floor(bits/2), width of an index inside a cluster
	lowBits uint8

	// min and max are valid only when occupied.
	occupied bool
	min      uint64
	max      uint64

	// which clusters are non-empty, over 1<<(bits-lowBits) items.
	// nil iff clusters is empty.
	summary *node

	// cluster index -> cluster over 1<<lowBits items
	clusters map[uint64]*node
}

func newNode(b uint8) *node {
	n := &node{bits: b}
	if b > baseBits {
		_, n.lowBits = splitBits(b)
	}
	return n
}

func (n *node) base() bool { return n.bits == baseBits }

func (n *node) high(x uint64) uint64 { return x >> n.lowBits }

func (n *node) low(x uint64) uint64 { return x & (1<<n.lowBits - 1) }

func (n *node) value(high, low uint64) uint64 { return high<<n.lowBits + low }

func (n *node) contains(x uint64) bool {
	if n.occupied && (x == n.min || x == n.max) {
		return true
	}
	if !n.occupied || x < n.min || x > n.max || n.base() {
		return false
	}
	c := n.clusters[n.high(x)]
	return c != nil && c.contains(n.low(x))
}

// predecessor return the largest item < x.
func (n *node) predecessor(x uint64) (uint64, bool) {
	if n.base() {
		if x == 1 && n.occupied && n.min == 0 {
			return 0, true
		}
		return 0, false
	}
	if n.occupied && x > n.max {
		return n.max, true
	}

	h, l := n.high(x), n.low(x)
	if c := n.clusters[h]; c != nil && c.min < l {
		p, _ := c.predecessor(l)
		return n.value(h, p), true
	}
	if n.summary != nil {
		if ph, ok := n.summary.predecessor(h); ok {
			return n.value(ph, n.clusters[ph].max), true
		}
	}
	if n.occupied && x > n.min {
		return n.min, true
	}
	return 0, false
}

// successor return the smallest item > x.
func (n *node) successor(x uint64) (uint64, bool) {
	if n.base() {
		if x == 0 && n.occupied && n.max == 1 {
			return 1, true
		}
		return 0, false
	}
	if n.occupied && x < n.min {
		return n.min, true
	}

	h, l := n.high(x), n.low(x)
	if c := n.clusters[h]; c != nil && c.max > l {
		s, _ := c.successor(l)
		return n.value(h, s), true
	}
	if n.summary != nil {
		if sh, ok := n.summary.successor(h); ok {
			return n.value(sh, n.clusters[sh].min), true
		}
	}
	if n.occupied && x < n.max {
		return n.max, true
	}
	return 0, false
}

// insert adds x, report whether x was not in the set before.
func (n *node) insert(x uint64) bool {
	if n.occupied && (x == n.min || x == n.max) {
		return false
	}
	if !n.occupied {
		n.min, n.max, n.occupied = x, x, true
		return true
	}
	if n.min == n.max {
		if x < n.min {
			n.min = x
		} else {
			n.max = x
		}
		return true
	}
	if n.base() {
		// both items of {0,1} are already cached.
		return false
	}

	// the new extreme stays cached, the old one moves down.
	if x < n.min {
		n.min, x = x, n.min
	} else if x > n.max {
		n.max, x = x, n.max
	}

	h, l := n.high(x), n.low(x)
	c := n.clusters[h]
	if c == nil {
		if n.summary == nil {
			n.summary = newNode(n.bits - n.lowBits)
		}
		n.summary.insert(h)
		if n.clusters == nil {
			n.clusters = make(map[uint64]*node)
		}
		c = newNode(n.lowBits)
		n.clusters[h] = c
	}
	return c.insert(l)
}

// delete removes x, report whether x was in the set.
func (n *node) delete(x uint64) bool {
	if !n.occupied || x < n.min || x > n.max {
		return false
	}
	if n.min == n.max {
		n.occupied = false
		n.min, n.max = 0, 0
		return true
	}
	if n.base() {
		if x == 0 {
			n.min = 1
		} else {
			n.max = 0
		}
		return true
	}

	var (
		h, l    uint64
		c       *node
		extreme = true
	)
	switch x {
	case n.min:
		if n.summary == nil {
			n.min = n.max
			return true
		}
		// pull the smallest clustered item up into min.
		h = n.summary.min
		c = n.clusters[h]
		l = c.min
		n.min = n.value(h, l)
	case n.max:
		if n.summary == nil {
			n.max = n.min
			return true
		}
		h = n.summary.max
		c = n.clusters[h]
		l = c.max
		n.max = n.value(h, l)
	default:
		h, l = n.high(x), n.low(x)
		c = n.clusters[h]
		if c == nil {
			return false
		}
		extreme = false
	}

	removed := c.delete(l)
	if !c.occupied {
		delete(n.clusters, h)
		n.summary.delete(h)
		if !n.summary.occupied {
			n.summary = nil
			n.clusters = nil
		}
	}
	return removed || extreme
}

// nodes return the number of live summary and cluster nodes below n.
func (n *node) nodes() int {
	if n.summary == nil {
		return 0
	}
	num := 1 + n.summary.nodes()
	for _, c := range n.clusters {
		num += 1 + c.nodes()
	}
	return num
}
