package ftoa

// decimal is a digit string d1 d2 ... dn read as 0.d1d2...dn * 10^point.
type decimal struct {
	digits []byte
	point  int
}

// shortest picks the fewest significant digits, up to precision, that
// identify the value within its rounding interval. Among candidates of equal
// length the one nearest the exact value wins, ties to even. When no
// candidate fits, the exact value is rounded to precision digits.
func shortest(iv interval, precision int, buf []byte) decimal {
	n := len(iv.mid)
	point := n + iv.scale
	for k := 1; k <= precision; k++ {
		if k >= n {
			// The value itself has at most k digits.
			return trim(decimal{digits: append(buf[:0], iv.mid...), point: point})
		}
		down := iv.mid[:k]
		up, carry := increment(buf[:0], down)
		downIn := iv.contains(down, n)
		upIn := iv.contains(up, n+carry)
		if !downIn && !upIn {
			continue
		}
		if downIn && (!upIn || roundsDown(iv.mid, k)) {
			return trim(decimal{digits: append(buf[:0], down...), point: point})
		}
		return trim(decimal{digits: up, point: point + carry})
	}
	k := precision
	if roundsDown(iv.mid, k) {
		return trim(decimal{digits: append(buf[:0], iv.mid[:k]...), point: point})
	}
	up, carry := increment(buf[:0], iv.mid[:k])
	return trim(decimal{digits: up, point: point + carry})
}

// contains reports whether the integer whose digits are p followed by
// zeros up to length n lies within the interval.
func (iv interval) contains(p []byte, n int) bool {
	lo := cmpPadded(p, n, iv.lo)
	hi := cmpPadded(p, n, iv.hi)
	if iv.inclusive {
		return lo >= 0 && hi <= 0
	}
	return lo > 0 && hi < 0
}

// roundsDown reports whether truncating x to k digits is the nearest k-digit
// result, breaking an exact tie toward an even last digit.
func roundsDown(x []byte, k int) bool {
	if k >= len(x) {
		return true
	}
	switch c := x[k]; {
	case c < '5':
		return true
	case c > '5':
		return false
	}
	for _, c := range x[k+1:] {
		if c != '0' {
			return false
		}
	}
	return (x[k-1]-'0')%2 == 0
}

// increment writes p+1 (as a k-digit prefix) into buf. On overflow of the
// leading digit the result is "1" followed by zeros and carry is 1.
func increment(buf, p []byte) ([]byte, int) {
	buf = append(buf[:0], p...)
	for i := len(buf) - 1; i >= 0; i-- {
		if buf[i] != '9' {
			buf[i]++
			return buf, 0
		}
		buf[i] = '0'
	}
	buf = append(buf[:1], buf...)
	buf[0] = '1'
	return buf, 1
}

// cmpPadded compares the integer with digits p followed by zeros up to
// length n against the integer with digits x. Neither has leading zeros.
func cmpPadded(p []byte, n int, x []byte) int {
	if n != len(x) {
		if n < len(x) {
			return -1
		}
		return 1
	}
	for i, c := range p {
		switch {
		case c < x[i]:
			return -1
		case c > x[i]:
			return 1
		}
	}
	for _, c := range x[len(p):] {
		if c != '0' {
			return -1
		}
	}
	return 0
}

func trim(d decimal) decimal {
	n := len(d.digits)
	for n > 1 && d.digits[n-1] == '0' {
		n--
	}
	d.digits = d.digits[:n]
	return d
}

// layout writes d positionally: "0.000ddd", "dd.ddd" or "ddd000.0".
func layout(dst []byte, d decimal) []byte {
	switch n := len(d.digits); {
	case d.point <= 0:
		dst = append(dst, '0', '.')
		for i := 0; i < -d.point; i++ {
			dst = append(dst, '0')
		}
		dst = append(dst, d.digits...)
	case d.point < n:
		dst = append(dst, d.digits[:d.point]...)
		dst = append(dst, '.')
		dst = append(dst, d.digits[d.point:]...)
	default:
		dst = append(dst, d.digits...)
		for i := n; i < d.point; i++ {
			dst = append(dst, '0')
		}
		dst = append(dst, '.', '0')
	}
	return dst
}
