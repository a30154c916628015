package natural

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFint_Add(t *testing.T) {
	tests := []struct {
		x, y   fint
		want   fint
		wantOk bool
	}{
		{0, 0, 0, true},
		{1, 2, 3, true},
		{maxFint, 0, maxFint, true},
		{maxFint, 1, 0, false},
		{maxFint - 1, 1, maxFint, true},
	}
	for _, tt := range tests {
		got, ok := tt.x.add(tt.y)
		assert.Equal(t, tt.wantOk, ok, "%v.add(%v)", tt.x, tt.y)
		assert.Equal(t, tt.want, got, "%v.add(%v)", tt.x, tt.y)
	}
}

func TestFint_Mul(t *testing.T) {
	tests := []struct {
		x, y   fint
		want   fint
		wantOk bool
	}{
		{0, 0, 0, true},
		{maxFint, 0, 0, true},
		{1, maxFint, maxFint, true},
		{maxFint, 2, 0, false},
		{3037000500, 3037000500, 0, false}, // isqrt(MaxInt64)+1 squared
		{3037000499, 3037000499, 9223372030926249001, true},
	}
	for _, tt := range tests {
		got, ok := tt.x.mul(tt.y)
		assert.Equal(t, tt.wantOk, ok, "%v.mul(%v)", tt.x, tt.y)
		assert.Equal(t, tt.want, got, "%v.mul(%v)", tt.x, tt.y)
	}
}

func TestFint_Fsa(t *testing.T) {
	tests := []struct {
		x      fint
		b      byte
		want   fint
		wantOk bool
	}{
		{0, 7, 7, true},
		{12, 3, 123, true},
		{922337203685477580, 7, math.MaxInt64, true},
		{922337203685477580, 8, 0, false},
		{maxFint, 0, 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.x.fsa(1, tt.b)
		assert.Equal(t, tt.wantOk, ok, "%v.fsa(1, %v)", tt.x, tt.b)
		assert.Equal(t, tt.want, got, "%v.fsa(1, %v)", tt.x, tt.b)
	}
}

func TestFint_Prec(t *testing.T) {
	tests := []struct {
		x    fint
		want int
	}{
		{0, 0},
		{1, 1},
		{9, 1},
		{10, 2},
		{999, 3},
		{1000, 4},
		{maxFint, 19},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.x.prec(), "%v.prec()", tt.x)
	}
}

func TestDigits_Trim(t *testing.T) {
	tests := []struct {
		x    digits
		want digits
	}{
		{digits{0}, digits{0}},
		{digits{0, 0, 0}, digits{0}},
		{digits{1, 0, 0}, digits{1}},
		{digits{0, 1}, digits{0, 1}},
		{digits{5, 4, 3}, digits{5, 4, 3}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.x.trim())
	}
}

func TestDigits_Fint(t *testing.T) {
	t.Run("fits", func(t *testing.T) {
		got, ok := newDigitsFromFint(math.MaxInt64).fint()
		assert.True(t, ok)
		assert.Equal(t, fint(math.MaxInt64), got)
	})

	t.Run("overflows", func(t *testing.T) {
		// 9223372036854775808 = MaxInt64 + 1
		x := digits{8, 0, 8, 5, 7, 7, 4, 5, 8, 6, 3, 0, 2, 7, 3, 3, 2, 2, 9}
		_, ok := x.fint()
		assert.False(t, ok)
	})
}

func TestDigits_Cmp(t *testing.T) {
	tests := []struct {
		x, y digits
		want int
	}{
		{digits{0}, digits{0}, 0},
		{digits{1}, digits{2}, -1},
		{digits{0, 1}, digits{9}, 1},
		{digits{9, 9}, digits{0, 0, 1}, -1},
		{digits{1, 2, 3}, digits{1, 2, 3}, 0},
		{digits{2, 2, 3}, digits{1, 2, 3}, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.x.cmp(tt.y), "cmp(%v, %v)", tt.x, tt.y)
	}
}

func TestDigits_Add_carryChain(t *testing.T) {
	// 999 + 1 must ripple the carry through every position.
	got := digits{9, 9, 9}.add(digits{1})
	assert.Equal(t, digits{0, 0, 0, 1}, got)
}

func TestDigits_Mul_deepCarries(t *testing.T) {
	// 99999 * 99999: accumulated positions exceed a single carry step.
	x := digits{9, 9, 9, 9, 9}
	got := x.mul(x)
	assert.Equal(t, "9999800001", got.string())
}

func TestDigits_String(t *testing.T) {
	assert.Equal(t, "0", digits{0}.string())
	assert.Equal(t, "1024", digits{4, 2, 0, 1}.string())
}
