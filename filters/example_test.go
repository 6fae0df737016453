package filters_test

import (
	"fmt"

	"github.com/probatix/probatix/filters"
)

func ExampleBloomFilter() {
	// Sized for 1000 elements at a 1% false-positive rate.
	filter, _ := filters.NewBloomFilter(1000, 0.01)
	filter.InsertString("hello")
	fmt.Println(filter.LookupString("hello"))
	// Output: true
}

func ExampleCountingBloomFilter() {
	filter, _ := filters.NewCountingBloomFilter(1000, 0.01)
	filter.InsertString("hello")
	fmt.Println(filter.LookupString("hello"))

	filter.RemoveString("hello")
	fmt.Println(filter.LookupString("hello"))
	// Output:
	// true
	// false
}

func ExampleBloomFilter_withBuffer() {
	// The filter can borrow caller-owned memory; the buffer is bound,
	// zeroed and must outlive the filter.
	buf := make([]byte, 2048)
	filter, _ := filters.NewBloomFilterWithBuffer(1000, 0.01, buf)
	filter.InsertString("hello")
	fmt.Println(filter.LookupString("hello"))
	// Output: true
}
