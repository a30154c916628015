package natural

import "math"

// fint (Fast INTeger) is a wrapper around int64 used for magnitudes that
// fit the native width.
type fint int64

// maxFint is a maximum value of fint.
const maxFint = math.MaxInt64

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]fint{
	1,                         // 10^0
	10,                        // 10^1
	100,                       // 10^2
	1_000,                     // 10^3
	10_000,                    // 10^4
	100_000,                   // 10^5
	1_000_000,                 // 10^6
	10_000_000,                // 10^7
	100_000_000,               // 10^8
	1_000_000_000,             // 10^9
	10_000_000_000,            // 10^10
	100_000_000_000,           // 10^11
	1_000_000_000_000,         // 10^12
	10_000_000_000_000,        // 10^13
	100_000_000_000_000,       // 10^14
	1_000_000_000_000_000,     // 10^15
	10_000_000_000_000_000,    // 10^16
	100_000_000_000_000_000,   // 10^17
	1_000_000_000_000_000_000, // 10^18
}

// add calculates x + y and checks overflow.
func (x fint) add(y fint) (z fint, ok bool) {
	if maxFint-x < y {
		return 0, false
	}
	z = x + y
	return z, true
}

// mul calculates x * y and checks overflow.
func (x fint) mul(y fint) (z fint, ok bool) {
	if y == 0 {
		return 0, true
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	return z, true
}

// lsh (Left Shift) calculates x * 10^shift and checks overflow.
func (x fint) lsh(shift int) (z fint, ok bool) {
	// Special cases
	switch {
	case shift <= 0:
		return x, true
	case shift == 1 && x < maxFint/10: // to speed up common case
		return x * 10, true
	case shift >= len(pow10):
		return 0, false
	}
	// General case
	y := pow10[shift]
	return x.mul(y)
}

// fsa (Fused Shift and Addition) calculates x * 10^shift + b and checks overflow.
func (x fint) fsa(shift int, b byte) (z fint, ok bool) {
	z, ok = x.lsh(shift)
	if !ok {
		return 0, false
	}
	z, ok = z.add(fint(b))
	if !ok {
		return 0, false
	}
	return z, true
}

// prec returns length of x in decimal digits.
// prec assumes that 0 has no digits.
func (x fint) prec() int {
	left, right := 0, len(pow10)
	for left < right {
		mid := (left + right) / 2
		if x < pow10[mid] {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// digits is a sequence of base-10 digits, least significant first.
// The canonical form carries no high-order zeros, except that zero itself
// is the single digit 0.
type digits []byte

// newDigitsFromFint decomposes a native magnitude into canonical digits.
func newDigitsFromFint(x fint) digits {
	if x == 0 {
		return digits{0}
	}
	d := make(digits, 0, x.prec())
	for x > 0 {
		d = append(d, byte(x%10))
		x /= 10
	}
	return d
}

// trim drops high-order zeros, keeping at least one digit.
func (x digits) trim() digits {
	n := len(x)
	for n > 1 && x[n-1] == 0 {
		n--
	}
	return x[:n]
}

// fint folds x into a native magnitude and checks overflow.
func (x digits) fint() (f fint, ok bool) {
	for i := len(x) - 1; i >= 0; i-- {
		f, ok = f.fsa(1, x[i])
		if !ok {
			return 0, false
		}
	}
	return f, true
}

// string renders x as a decimal string, most significant digit first.
func (x digits) string() string {
	buf := make([]byte, len(x))
	for i, d := range x {
		buf[len(x)-1-i] = d + '0'
	}
	return string(buf)
}

// cmp compares magnitudes and returns -1, 0, or 1.
// Both operands must be in canonical form.
func (x digits) cmp(y digits) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// add calculates x + y by schoolbook addition: position-wise sums into
// a buffer one digit longer than the longer operand, then a single
// left-to-right carry pass.
func (x digits) add(y digits) digits {
	long, short := x, y
	if len(long) < len(short) {
		long, short = short, long
	}
	buf := make(digits, len(long)+1)
	copy(buf, long)
	for i, d := range short {
		buf[i] += d
	}
	for i := 0; i < len(buf)-1; i++ {
		buf[i+1] += buf[i] / 10
		buf[i] %= 10
	}
	return buf.trim()
}

// mul calculates x * y by schoolbook multiplication: every pairwise digit
// product accumulates into position i+j of a wide buffer, then a
// left-to-right normalization peels all excess carries into higher
// positions. A position may hold far more than a single carry's worth
// before normalization, so the carry itself is peeled digit by digit.
func (x digits) mul(y digits) digits {
	buf := make([]int, len(x)+len(y))
	for i, a := range x {
		for j, b := range y {
			buf[i+j] += int(a) * int(b)
		}
	}
	z := make(digits, len(buf))
	for i, v := range buf {
		for k, c := i+1, v/10; c > 0; k, c = k+1, c/10 {
			buf[k] += c % 10
		}
		z[i] = byte(v % 10)
	}
	return z.trim()
}
