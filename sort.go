package veb

import "sort"

// Sort sorts array in ascending order.
// It suits a small value range with many repeated values:
// the distinct values go into a Tree, repeats are counted in a map.
// space complexity: 2 * number of distinct values
// time complexity: O(N log log R), R = max-min+1
func Sort(array []int32) {
	if len(array) < 2 {
		return
	}

	// value range
	lo, hi := array[0], array[0]
	for _, x := range array {
		lo = min(lo, x)
		hi = max(hi, x)
	}
	srange := uint64(int64(hi) - int64(lo))
	if srange > 2*uint64(len(array)) {
		sort.Slice(array, func(i, j int) bool { return array[i] < array[j] })
		return
	}

	t, _ := New(srange + 1)
	m := make(map[int32]int)
	for _, x := range array {
		// record order
		t.root.insert(uint64(int64(x) - int64(lo)))
		// record count
		m[x]++
	}

	j := 0
	t.Range(func(x uint64) bool {
		v := int32(int64(x) + int64(lo))
		for i := 0; i < m[v]; i++ {
			array[j] = v
			j++
		}
		return true
	})
}
