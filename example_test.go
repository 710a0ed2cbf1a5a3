package bitflag_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/bitflag"
)

// Example demonstrates packing 4-bit fields and reading them back.
func Example() {
	arr, err := bitflag.New(4)
	if err != nil {
		log.Fatal(err)
	}

	_ = arr.Set(0, 7)
	_ = arr.Set(1, 200) // truncated to 200 & 0xF
	_ = arr.Or(2, 0b0101)

	for i, v := range arr.All() {
		if i > 2 {
			break
		}
		fmt.Println(i, v)
	}
	fmt.Printf("word 0: %#x\n", arr.RawWord(0))
	// Output:
	// 0 7
	// 1 8
	// 2 5
	// word 0: 0x587
}

// ExampleArray_SetWidth demonstrates migrating fields to a narrower width.
func ExampleArray_SetWidth() {
	arr, _ := bitflag.New(8)
	for i, v := range []uint32{5, 200, 1, 255} {
		_ = arr.Set(i, v)
	}

	if err := arr.SetWidth(4); err != nil {
		log.Fatal(err)
	}

	values := make([]uint32, 4)
	for i := range values {
		values[i], _ = arr.Get(i)
	}
	fmt.Println(values)

	err := arr.SetWidth(3)
	var iw *bitflag.ErrInvalidWidth
	fmt.Println(errors.As(err, &iw), arr.Width())
	// Output:
	// [5 8 1 15]
	// true 4
}

// ExampleArray_NonZero demonstrates collecting occupied indices into a Roaring bitmap.
func ExampleArray_NonZero() {
	arr, _ := bitflag.New(2)
	_ = arr.Set(3, 1)
	_ = arr.Set(40, 2)

	rb, _ := arr.NonZero()
	fmt.Println(rb.ToArray())
	// Output: [3 40]
}
