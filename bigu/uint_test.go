package bigu

import (
	"errors"
	"math"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykiselev/arena"
)

func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic with %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v, want %v", err, target)
	}()
	fn()
}

func newArena(t *testing.T) *arena.Arena {
	t.Helper()
	a := arena.NewArena(1<<16, 1<<14)
	s := a.Open()
	t.Cleanup(s.Close)
	return a
}

func TestFromInt(t *testing.T) {
	a := newArena(t)

	tests := []struct {
		v     int64
		words []uint32
	}{
		{1, []uint32{1}},
		{999_999_999, []uint32{999_999_999}},
		{1_000_000_000, []uint32{0, 1}},
		{math.MaxInt64, []uint32{854_775_807, 223_372_036, 9}},
	}
	for _, tt := range tests {
		x := FromInt(a, tt.v)
		require.Equal(t, len(tt.words), x.Len(), "FromInt(%d)", tt.v)
		for i, w := range tt.words {
			assert.Equal(t, w, x.Word(i), "FromInt(%d) word %d", tt.v, i)
		}
	}

	requirePanicIs(t, ErrNotPositive, func() { FromInt(a, 0) })
	requirePanicIs(t, ErrNotPositive, func() { FromInt(a, -5) })
}

func TestParseRoundTrip(t *testing.T) {
	a := newArena(t)

	tests := []string{
		"1",
		"9",
		"10",
		"999999999",
		"1000000000",
		"1000000001",
		"123456789012345678901234567890",
		"100000000000000000000000000000000000000",
		"900000000000000000000000000000000000009",
	}
	for _, s := range tests {
		assert.Equal(t, s, Parse(a, s).String())
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		n := 1 + rng.Intn(120)
		var sb strings.Builder
		sb.WriteByte(byte('1' + rng.Intn(9)))
		for j := 1; j < n; j++ {
			sb.WriteByte(byte('0' + rng.Intn(10)))
		}
		s := sb.String()
		require.Equal(t, s, Parse(a, s).String())
	}
}

func TestParseNormalizes(t *testing.T) {
	a := newArena(t)

	x := Parse(a, "0000000000000000000042")
	assert.Equal(t, 1, x.Len())
	assert.Equal(t, "42", x.String())
}

func TestParseErrors(t *testing.T) {
	a := newArena(t)

	requirePanicIs(t, ErrSyntax, func() { Parse(a, "") })
	requirePanicIs(t, ErrSyntax, func() { Parse(a, "12a4") })
	requirePanicIs(t, ErrSyntax, func() { Parse(a, "-1") })
	requirePanicIs(t, ErrSyntax, func() { Parse(a, "1_000") })
	requirePanicIs(t, ErrNotPositive, func() { Parse(a, "0") })
	requirePanicIs(t, ErrNotPositive, func() { Parse(a, "0000000000000") })
}

func TestMultiply(t *testing.T) {
	a := newArena(t)

	x := MulSmall(a, FromInt(a, 123456789), 123456789)
	assert.Equal(t, "15241578750190521", x.String())

	x = MulInt(a, FromInt(a, math.MaxInt32), 999999999)
	assert.Equal(t, "2147483644852516353", x.String())

	x = Mul(a, FromInt(a, math.MaxInt64), FromInt(a, math.MaxInt64))
	assert.Equal(t, "85070591730234615847396907784232501249", x.String())

	x = MulInt(a, Parse(a, "123456789123456789123456789"), math.MaxInt64)
	assert.Equal(t, "1138687896561168177008271898869584003447103723", x.String())
}

func TestMultiplyAgainstBig(t *testing.T) {
	a := newArena(t)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		xs := randomDigits(rng, 1+rng.Intn(60))
		ys := randomDigits(rng, 1+rng.Intn(60))
		m := uint32(1 + rng.Intn(Base-1))

		bx, _ := new(big.Int).SetString(xs, 10)
		by, _ := new(big.Int).SetString(ys, 10)

		s := a.Open()
		x, y := Parse(a, xs), Parse(a, ys)
		require.Equal(t, new(big.Int).Mul(bx, by).String(), Mul(a, x, y).String())
		require.Equal(t, new(big.Int).Mul(bx, big.NewInt(int64(m))).String(), MulSmall(a, x, m).String())
		s.Close()
	}
}

func TestMultiplyErrors(t *testing.T) {
	a := newArena(t)
	x := FromInt(a, 7)

	requirePanicIs(t, ErrInvalidMultiplier, func() { MulSmall(a, x, 0) })
	requirePanicIs(t, ErrInvalidMultiplier, func() { MulSmall(a, x, Base) })
	requirePanicIs(t, ErrNotPositive, func() { MulInt(a, x, 0) })
	requirePanicIs(t, ErrNotPositive, func() { MulInt(a, x, -1) })
	requirePanicIs(t, ErrInvalidMultiplier, func() { MulPow2(a, x, -1) })
}

func TestMulPow2(t *testing.T) {
	a := newArena(t)

	for _, k := range []int{0, 1, 28, 29, 30, 58, 100, 1000} {
		want := new(big.Int).Lsh(big.NewInt(12345), uint(k))
		assert.Equal(t, want.String(), MulPow2(a, FromInt(a, 12345), k).String(), "k=%d", k)
	}
}

func TestDivSmall(t *testing.T) {
	a := newArena(t)

	x := Parse(a, "1234567888765432110")
	x.DivSmall(5_000_000)
	assert.Equal(t, "246913577753", x.String())

	x = Parse(a, "1000000000000000000")
	x.DivSmall(10)
	assert.Equal(t, "100000000000000000", x.String())
	assert.Equal(t, 2, x.Len())

	requirePanicIs(t, ErrInvalidMultiplier, func() { x.DivSmall(0) })
	requirePanicIs(t, ErrInvalidMultiplier, func() { x.DivSmall(Base) })
	requirePanicIs(t, ErrNotPositive, func() { FromInt(a, 3).DivSmall(5) })
}

func TestDigits(t *testing.T) {
	a := newArena(t)

	x := Parse(a, "1000000000000000000000000000001")
	assert.Equal(t, 36, x.DigitsUpperBound())

	d := Digits(a, x)
	assert.Equal(t, "1000000000000000000000000000001", string(d.Slice()))
	assert.True(t, d.IsTopmost())
	assert.Equal(t, 31, a.BytesInUse())
}

func TestCmp(t *testing.T) {
	a := newArena(t)

	x := Parse(a, "1000000000")
	y := Parse(a, "999999999")
	z := Parse(a, "1000000001")
	assert.Equal(t, 1, x.Cmp(y))
	assert.Equal(t, -1, y.Cmp(x))
	assert.Equal(t, -1, x.Cmp(z))
	assert.Equal(t, 0, x.Cmp(Parse(a, "1000000000")))
}

func TestFromWords(t *testing.T) {
	a := newArena(t)

	x := FromWords(a, []uint32{5, 0, 7, 0, 0})
	assert.Equal(t, 3, x.Len())
	assert.Equal(t, "7000000000000000005", x.String())

	requirePanicIs(t, ErrNotPositive, func() { FromWords(a, []uint32{0, 0}) })
	requirePanicIs(t, ErrSyntax, func() { FromWords(a, []uint32{Base}) })
}

func TestScratchIsReclaimed(t *testing.T) {
	a := arena.NewArena(0, 256)

	for i := 0; i < 1000; i++ {
		a.Do(func() {
			x := FromInt(a, math.MaxInt64)
			for j := 0; j < 5; j++ {
				x = Mul(a, x, x)
			}
		})
	}
	assert.Equal(t, 0, a.WordsInUse())
	assert.Equal(t, 0, a.Allocated())
}

func randomDigits(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	b[0] = byte('1' + rng.Intn(9))
	for i := 1; i < n; i++ {
		b[i] = byte('0' + rng.Intn(10))
	}
	return string(b)
}
