package veb_test

import (
	"fmt"

	"github.com/min1324/veb"
)

func ExampleNew() {
	t, err := veb.New(5)
	if err != nil {
		panic(err)
	}
	fmt.Println(t.Universe())
	// Output:
	// 8
}

func ExampleTree_Successor() {
	t := veb.MustNew(1<<20, 10, 500, 70000)
	for _, x := range []uint64{0, 10, 600, 70000} {
		s, ok, _ := t.Successor(x)
		fmt.Println(x, s, ok)
	}
	// Output:
	// 0 10 true
	// 10 500 true
	// 600 70000 true
	// 70000 0 false
}

func ExampleTree_Predecessor() {
	t := veb.MustNew(1<<20, 10, 500, 70000)
	p, ok, _ := t.Predecessor(499)
	fmt.Println(p, ok)
	_, ok, _ = t.Predecessor(10)
	fmt.Println(ok)
	// Output:
	// 10 true
	// false
}

func ExampleTree_All() {
	t := veb.MustNew(16, 3, 1, 4, 1, 5, 9, 2, 6)
	t.Delete(4)
	fmt.Println(t)
	for x := range t.All() {
		fmt.Printf("%d ", x)
	}
	fmt.Println()
	// Output:
	// {1 2 3 5 6 9}
	// 1 2 3 5 6 9
}

func ExampleTree_Insert() {
	t := veb.MustNew(16)
	fmt.Println(t.Insert(7))
	fmt.Println(t.Insert(7))
	_, err := t.Insert(16)
	fmt.Println(err)
	// Output:
	// true <nil>
	// false <nil>
	// value 16, universe size 16: value is outside the universe
}

func ExampleUnion() {
	s := veb.MustNew(36, 0, 1, 2, 3, 4, 5)
	p := veb.MustNew(100, 4, 5, 6, 7, 8)
	fmt.Println(veb.Union(s, p))
	fmt.Println(veb.Intersect(s, p))
	fmt.Println(veb.Difference(s, p))
	fmt.Println(veb.Complement(s, p))
	// Output:
	// {0 1 2 3 4 5 6 7 8}
	// {4 5}
	// {0 1 2 3}
	// {0 1 2 3 6 7 8}
}

func ExampleSort() {
	a := []int32{3, -1, 3, 0, 2, -1}
	veb.Sort(a)
	fmt.Println(a)
	// Output:
	// [-1 -1 0 2 3 3]
}
