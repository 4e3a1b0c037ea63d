package deque_test

import (
	"fmt"
	"slices"
	"strings"

	"github.com/queuekit/deque"
)

// A typical caller reads whitespace-delimited tokens, pushing each one onto
// the deque and popping on the "-" sentinel, then reports what remains.
func Example() {
	d := deque.MakeDeque[string]()
	var popped []string
	for _, tok := range strings.Fields("to be or not to - be - - that - - - is") {
		if tok != "-" {
			_ = d.PushBack(tok)
			continue
		}
		if s, err := d.PopBack(); err == nil {
			popped = append(popped, s)
		}
	}
	fmt.Printf("%s (%d left on deque)\n", strings.Join(popped, " "), d.Len())
	fmt.Println(strings.Join(slices.Collect(d.Iter()), " "))
	// Output:
	// to be not that or be (2 left on deque)
	// to is
}
