package limbint

import (
	"math"
)

// IntFromFloat64 creates an Int from a float64. Any fractional portion is
// truncated towards zero. Every finite float64 is an integer that fits in an
// Int, so inRange is only false for NaN and the infinities, which return 0.
func IntFromFloat64(f float64) (out Int, inRange bool) {
	if f != f || math.IsInf(f, 0) { // f != f == isnan
		return out, false
	}

	f = math.Trunc(f)
	neg := f < 0
	if neg {
		f = -f
	}

	if f < wrapUint64Float {
		out = IntFromUint64(uint64(f))
	} else {
		// f == frac * 2^exp, with frac in [0.5, 1). The 53 mantissa bits
		// survive the scale to 64 bits exactly.
		frac, exp := math.Frexp(f)
		out = IntFromUint64(uint64(math.Ldexp(frac, 64))).Lsh(uint(exp - 64))
	}

	if neg {
		out = out.Neg()
	}
	return out, true
}

// AsFloat64 returns the float64 nearest to i, rounding ties to even. Values
// too large for a float64 return +Inf or -Inf.
func (i Int) AsFloat64() float64 {
	if i.IsNegative() {
		return -i.Neg().AsFloat64()
	}

	bl := bitLenMag(i.limbs)
	if bl <= 64 {
		return float64(uint64(i.Limb(0)) | uint64(i.Limb(1))<<32)
	}

	// Keep the top 64 bits and fold everything below into a sticky bit. The
	// sticky bit sits well under the 53-bit mantissa, so the uint64 to
	// float64 conversion rounds exactly as if it had all the bits.
	shift := uint(bl - 64)
	top := i.Rsh(shift)
	v := uint64(top.Limb(0)) | uint64(top.Limb(1))<<32
	if i.hasBitsBelow(shift) {
		v |= 1
	}
	return math.Ldexp(float64(v), int(shift))
}

// hasBitsBelow reports whether any of the lowest n bits of i are set.
func (i Int) hasBitsBelow(n uint) bool {
	w, s := int(n/32), n%32
	for k := 0; k < w; k++ {
		if i.Limb(k) != 0 {
			return true
		}
	}
	return s > 0 && i.Limb(w)&(1<<s-1) != 0
}
