package limbint

import (
	"math/bits"
)

// The functions in this file operate on magnitudes: little-endian []uint32
// with no sign limb. Inputs are never modified. Outputs are freshly allocated
// and trimmed of high zero limbs unless stated otherwise.

func trimMag(m []uint32) []uint32 {
	for len(m) > 0 && m[len(m)-1] == 0 {
		m = m[:len(m)-1]
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

func bitLenMag(m []uint32) int {
	m = trimMag(m)
	if len(m) == 0 {
		return 0
	}
	return (len(m)-1)*32 + bits.Len32(m[len(m)-1])
}

// cmpMag expects trimmed inputs.
func cmpMag(a, b []uint32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

func mulMag(a, b []uint32) []uint32 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	out := make([]uint32, len(a)+len(b))
	for i, av := range a {
		if av == 0 {
			continue
		}
		var carry uint64
		for j, bv := range b {
			t := uint64(av)*uint64(bv) + uint64(out[i+j]) + carry
			out[i+j] = uint32(t)
			carry = t >> 32
		}
		out[i+len(b)] = uint32(carry)
	}
	return trimMag(out)
}

// mulAddMagLimb returns m*by + add.
func mulAddMagLimb(m []uint32, by, add uint32) []uint32 {
	out := make([]uint32, len(m)+1)
	carry := uint64(add)
	for i, v := range m {
		t := uint64(v)*uint64(by) + carry
		out[i] = uint32(t)
		carry = t >> 32
	}
	out[len(m)] = uint32(carry)
	return trimMag(out)
}

// quoRemMagLimb divides m by a single non-zero limb.
func quoRemMagLimb(m []uint32, by uint32) (q []uint32, r uint32) {
	q = make([]uint32, len(m))
	for i := len(m) - 1; i >= 0; i-- {
		// r < by is guaranteed, so Div32 will not panic:
		q[i], r = bits.Div32(r, m[i], by)
	}
	return trimMag(q), r
}

// quoRemMag implements truncated division of two trimmed magnitudes. v must
// not be empty.
func quoRemMag(u, v []uint32) (q, r []uint32) {
	if len(v) == 0 {
		panic("limbint: division by zero")
	}

	if cmpMag(u, v) < 0 {
		return nil, u // it's 100% remainder
	}

	if len(v) == 1 {
		var rl uint32
		q, rl = quoRemMagLimb(u, v[0])
		return q, trimMag([]uint32{rl})
	}

	return quoRemMagKnuth(u, v)
}

// quoRemMagKnuth is Knuth's Algorithm D, adapted from Warren, Hacker's
// Delight, 9-2 (divmnu), using 32-bit digits. Requires len(v) >= 2 and
// len(u) >= len(v).
func quoRemMagKnuth(u, v []uint32) (q, r []uint32) {
	const b = 1 << 32

	m, n := len(u), len(v)

	// Normalise so the top limb of the divisor has its high bit set. Shifts of
	// a uint32 by 32 yield 0, which covers the s == 0 case below.
	s := uint(bits.LeadingZeros32(v[n-1]))

	vn := make([]uint32, n)
	for i := n - 1; i > 0; i-- {
		vn[i] = (v[i] << s) | (v[i-1] >> (32 - s))
	}
	vn[0] = v[0] << s

	un := make([]uint32, m+1)
	un[m] = u[m-1] >> (32 - s)
	for i := m - 1; i > 0; i-- {
		un[i] = (u[i] << s) | (u[i-1] >> (32 - s))
	}
	un[0] = u[0] << s

	vtop, vnext := uint64(vn[n-1]), uint64(vn[n-2])

	q = make([]uint32, m-n+1)
	for j := m - n; j >= 0; j-- {
		num := (uint64(un[j+n]) << 32) | uint64(un[j+n-1])
		qhat := num / vtop
		rhat := num % vtop

		// qhat*vnext is only evaluated once qhat < b, so it can't overflow.
		for qhat >= b || qhat*vnext > (rhat<<32)|uint64(un[j+n-2]) {
			qhat--
			rhat += vtop
			if rhat >= b {
				break
			}
		}

		// Multiply and subtract.
		var carry uint64
		var borrow uint32
		for i := 0; i < n; i++ {
			p := qhat*uint64(vn[i]) + carry
			carry = p >> 32
			un[i+j], borrow = bits.Sub32(un[i+j], uint32(p), borrow)
		}
		un[j+n], borrow = bits.Sub32(un[j+n], uint32(carry), borrow)

		if borrow != 0 {
			// Subtracted too much; add one divisor back.
			qhat--
			var c uint32
			for i := 0; i < n; i++ {
				un[i+j], c = bits.Add32(un[i+j], vn[i], c)
			}
			un[j+n] += c
		}

		q[j] = uint32(qhat)
	}

	r = make([]uint32, n)
	for i := 0; i < n; i++ {
		r[i] = (un[i] >> s) | (un[i+1] << (32 - s))
	}

	return trimMag(q), trimMag(r)
}
