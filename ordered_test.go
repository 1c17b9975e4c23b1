package veb_test

import (
	"math/rand"
	"testing"

	orderedset "github.com/nursik/go-ordered-set"
	"github.com/stretchr/testify/require"

	"github.com/min1324/veb"
)

// Successor and Predecessor agree with an independent ordered set
// under a long random mix of inserts and deletes.
func TestMatchesOrderedSet(t *testing.T) {
	const universe = 1 << 16
	r := rand.New(rand.NewSource(5))
	s := veb.MustNew(universe)
	ref := orderedset.NewTreeSet()

	for round := 0; round < 20; round++ {
		for i := 0; i < 400; i++ {
			x := uint64(r.Intn(universe))
			if r.Intn(4) == 0 {
				_, err := s.Delete(x)
				require.NoError(t, err)
				ref.Remove(x)
			} else {
				_, err := s.Insert(x)
				require.NoError(t, err)
				ref.Insert(x)
			}
		}
		require.Equal(t, ref.Size(), s.Len())

		for i := 0; i < 200; i++ {
			x := uint64(r.Intn(universe))

			found, err := s.Contains(x)
			require.NoError(t, err)
			require.Equal(t, ref.Contains(x), found, "contains(%d)", x)

			want, _ := ref.UpperBound(x)
			got, ok, err := s.Successor(x)
			require.NoError(t, err)
			require.Equal(t, want != orderedset.NotFound, ok, "successor(%d)", x)
			if ok {
				require.Equal(t, want, got, "successor(%d)", x)
			}

			// LowerBound gives the index of the first item >= x,
			// the item before it is the predecessor.
			_, idx := ref.LowerBound(x)
			got, ok, err = s.Predecessor(x)
			require.NoError(t, err)
			require.Equal(t, idx > 0, ok, "predecessor(%d)", x)
			if ok {
				require.Equal(t, ref.Kth(idx-1), got, "predecessor(%d)", x)
			}
		}
	}
}
