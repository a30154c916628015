package natural

import "fmt"

// MustNew is like [New] but panics if the value is invalid.
// It simplifies safe initialization of global variables holding numbers.
func MustNew(v int64) *Number {
	n, err := New(v)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v) failed: %v", v, err))
	}
	return n
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParse(s string) *Number {
	n, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return n
}
