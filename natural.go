package natural

import (
	"fmt"
	"sync"
)

// Number is a representation of a non-negative integer of arbitrary length.
// The zero value is the numeric value of 0.
//
// A number keeps its magnitude in one of two forms:
//
//   - a native int64 value, when the magnitude fits the int64 range.
//   - a sequence of base-10 digits, least significant first, when it does not.
//
// Numbers constructed from a string carry their digits from the start;
// numbers constructed from an int64 derive them on first use and cache
// the result. The cached derivation is guarded, so a number is safe for
// concurrent reads by multiple goroutines.
//
// A number is immutable: [Number.Add], [Number.Mul], and [Number.Pow]
// return new numbers rather than mutating their operands.
type Number struct {
	val  int64  // native magnitude, meaningful only when big is false
	big  bool   // true when the magnitude exceeds the int64 range
	dig  digits // base-10 digits, least significant first
	once sync.Once
}

// New returns a number equal to v.
//
// New returns an error if v is negative.
func New(v int64) (*Number, error) {
	if v < 0 {
		return nil, fmt.Errorf("negative value %v: %w", v, ErrInvalidArgument)
	}
	return &Number{val: v}, nil
}

// Parse converts a decimal string to a number.
// Leading zeros are stripped, and an empty string is treated as 0.
// Magnitudes beyond the int64 range are valid; such numbers have no
// native value, and [Number.Int64] returns [ErrOverflow] for them.
//
// Parse returns an error if the string contains a non-digit character.
func Parse(s string) (*Number, error) {
	for pos, width := 0, len(s); pos < width; pos++ {
		if s[pos] < '0' || s[pos] > '9' {
			return nil, fmt.Errorf("invalid character %q: %w", s[pos], ErrInvalidArgument)
		}
	}
	start := 0
	for start < len(s)-1 && s[start] == '0' {
		start++
	}
	if s = s[start:]; s == "" {
		s = "0"
	}
	dig := make(digits, len(s))
	for i := 0; i < len(s); i++ {
		dig[len(s)-1-i] = s[i] - '0'
	}
	return newFromDigits(dig), nil
}

// newFromDigits builds a number from canonical digits, re-deriving the
// native value when the magnitude fits.
func newFromDigits(dig digits) *Number {
	if f, ok := dig.fint(); ok {
		return &Number{val: int64(f), dig: dig}
	}
	return &Number{big: true, dig: dig}
}

// Int64 returns the native value of n.
//
// Int64 returns [ErrOverflow] if the magnitude of n exceeds the int64 range.
func (n *Number) Int64() (int64, error) {
	if n.big {
		return 0, fmt.Errorf("%v does not fit int64: %w", n, ErrOverflow)
	}
	return n.val, nil
}

// IsZero returns true if n is equal to 0.
func (n *Number) IsZero() bool {
	return !n.big && n.val == 0
}

// Cmp compares n and m numerically and returns:
//
//	-1 if n < m
//	 0 if n == m
//	+1 if n > m
func (n *Number) Cmp(m *Number) int {
	if !n.big && !m.big {
		switch {
		case n.val < m.val:
			return -1
		case n.val > m.val:
			return 1
		}
		return 0
	}
	return n.loadDigits().cmp(m.loadDigits())
}

// loadDigits returns the canonical digit sequence of n, deriving and
// caching it on first use for numbers constructed from a native value.
func (n *Number) loadDigits() digits {
	n.once.Do(func() {
		if n.dig == nil {
			n.dig = newDigitsFromFint(fint(n.val))
		}
	})
	return n.dig
}

// String implements the [fmt.Stringer] interface and returns the decimal
// rendering of n without leading zeros.
func (n *Number) String() string {
	return n.loadDigits().string()
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (n *Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (n *Number) UnmarshalText(text []byte) error {
	m, err := Parse(string(text))
	if err != nil {
		return err
	}
	n.val, n.big, n.dig = m.val, m.big, m.dig
	return nil
}

// Digits returns the base-10 digits of n, least significant first,
// without leading zeros. Zero is the single digit 0.
// The returned slice is a fresh copy on every call.
func (n *Number) Digits() []int {
	dig := n.loadDigits()
	out := make([]int, len(dig))
	for i, d := range dig {
		out[i] = int(d)
	}
	return out
}

// DigitsBase returns the digits of n in the given base, least significant
// first. Base 10 uses the canonical digit sequence; any other base is
// computed by repeated division and never cached. Zero is the single
// digit 0 in every base.
//
// DigitsBase returns an error:
//   - if base is less than 2.
//   - if base is not 10 and the magnitude of n exceeds the int64 range.
//     Conversion to other bases is defined only for natively
//     representable values.
func (n *Number) DigitsBase(base int) ([]int, error) {
	if base < 2 {
		return nil, fmt.Errorf("base %v: %w", base, ErrInvalidArgument)
	}
	if base == 10 {
		return n.Digits(), nil
	}
	v, err := n.Int64()
	if err != nil {
		return nil, err
	}
	if v == 0 {
		return []int{0}, nil
	}
	var out []int
	for b := int64(base); v > 0; v /= b {
		out = append(out, int(v%b))
	}
	return out, nil
}

// Add calculates n + m by schoolbook digit addition and returns the sum
// as a new number. The sum is exact even when it exceeds the int64 range.
func (n *Number) Add(m *Number) *Number {
	return newFromDigits(n.loadDigits().add(m.loadDigits()))
}

// Mul calculates n * m by schoolbook digit multiplication and returns
// the product as a new number. The product is exact even when it exceeds
// the int64 range.
func (n *Number) Mul(m *Number) *Number {
	return newFromDigits(n.loadDigits().mul(m.loadDigits()))
}

// Pow calculates n raised to power by repeated multiplication.
// n.Pow(0) is 1 for every n, including 0.
//
// Pow returns an error if power is negative.
func (n *Number) Pow(power int) (*Number, error) {
	if power < 0 {
		return nil, fmt.Errorf("negative power %v: %w", power, ErrInvalidArgument)
	}
	z := &Number{val: 1}
	for i := 0; i < power; i++ {
		z = z.Mul(n)
	}
	return z, nil
}
