/*
Package veb implements a van Emde Boas tree: an ordered set of integers
drawn from a bounded universe [0, U), U a power of two.

Membership, insertion, deletion, predecessor and successor all take
O(log log U) time regardless of how many items are stored.

# Layout

A node over a universe of 2^k items splits every item x into

	high = x >> floor(k/2)        the cluster index
	low  = x & (2^floor(k/2) - 1) the index inside the cluster

Each cluster is itself a node over 2^floor(k/2) items, and a summary node
over 2^ceil(k/2) items records which clusters are non-empty. Every
operation recurses into at most one child whose bit width is half of
its parent's, which gives the log log U bound.

A node caches its minimum and maximum outside the clusters. An empty
node and a one item node never recurse, and clusters and summaries are
allocated on the first insert that needs them and released as soon as
they become empty. Memory therefore tracks the number of stored items,
not the size of the universe.

# Usage

	t, err := veb.New(1000) // universe rounded up to 1024
	if err != nil {
		return err
	}
	t.Insert(42)
	t.Insert(7)
	next, ok, _ := t.Successor(7) // 42, true

Values outside the universe are rejected with ErrOutOfRange. "Not found"
is never an error: Predecessor and Successor report it through ok.

A Tree is not safe for concurrent use.
*/
package veb
