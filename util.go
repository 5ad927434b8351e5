package limbint

type RandSource interface {
	Uint64() uint64
}

// RandInt generates a non-negative random Int of up to limbs*32 bits from an
// external source.
func RandInt(source RandSource, limbs int) Int {
	out := make([]uint32, limbs)
	for k := 0; k < limbs; k += 2 {
		v := source.Uint64()
		out[k] = uint32(v)
		if k+1 < limbs {
			out[k+1] = uint32(v >> 32)
		}
	}
	return newInt(out, signPos)
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Int) Int {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func Larger(a, b Int) Int {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

func Smaller(a, b Int) Int {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}
