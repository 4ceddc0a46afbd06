package bigu

// Word kernels over plain slices. They know nothing about arenas so the
// powers-of-five table can be built with them on the Go heap.

// mulVW sets z = x*m and returns the carry word. z and x may alias.
func mulVW(z, x []uint32, m uint32) uint32 {
	var c uint64
	for i, xi := range x {
		t := uint64(xi)*uint64(m) + c
		z[i] = uint32(t % Base)
		c = t / Base
	}
	return uint32(c)
}

// mulVV adds x*y into z, which must be zeroed and hold len(x)+len(y) words.
func mulVV(z, x, y []uint32) {
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var c uint64
		for j, yj := range y {
			t := uint64(z[i+j]) + uint64(xi)*uint64(yj) + c
			z[i+j] = uint32(t % Base)
			c = t / Base
		}
		z[i+len(y)] = uint32(c)
	}
}

// divVW sets z = x/d and returns the remainder. z and x may alias.
func divVW(z, x []uint32, d uint32) uint32 {
	var r uint64
	for i := len(x) - 1; i >= 0; i-- {
		t := r*Base + uint64(x[i])
		z[i] = uint32(t / uint64(d))
		r = t % uint64(d)
	}
	return uint32(r)
}

// normLen returns the length of w without its high zero words.
func normLen(w []uint32) int {
	n := len(w)
	for n > 0 && w[n-1] == 0 {
		n--
	}
	return n
}

// appendWord appends the 9 decimal digits of w, zero padded on the left.
func appendWord(dst []byte, w uint32) []byte {
	var buf [DigitsPerWord]byte
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = byte('0' + w%10)
		w /= 10
	}
	return append(dst, buf[:]...)
}
