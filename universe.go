package veb

import "math/bits"

const (
	// MaxRange is the largest range New accepts.
	// the universe size must stay representable as uint64.
	MaxRange uint64 = 1 << 63

	// the smallest universe holds {0,1}, kept in min/max alone.
	baseBits = 1
)

// universeBits return ceil(log2(valueRange)), never less than baseBits.
// range 1 and 2 both round to a 2 item universe.
func universeBits(valueRange uint64) uint8 {
	if valueRange <= 2 {
		return baseBits
	}
	return uint8(bits.Len64(valueRange - 1))
}

// x is an item in a universe of 1<<bits items.
// x = high*lsqrt + low <==> x = high<<lowBits | low
// high = x>>lowBits (cluster index), low = x&(lsqrt-1) (index in cluster)
// lowBits = floor(bits/2), highBits = ceil(bits/2).
func splitBits(b uint8) (highBits, lowBits uint8) {
	lowBits = b / 2
	return b - lowBits, lowBits
}
