package limbint

import (
	"errors"
	"math/big"
	"math/bits"
)

// ErrDivisionByZero is returned by Mod, Quo and QuoRem when the divisor is
// zero.
var ErrDivisionByZero = errors.New("limbint: division by zero")

// Int is an immutable signed integer of unbounded size, stored as a
// little-endian run of 32-bit two's complement limbs followed by an implied,
// infinite run of sign limbs.
//
// The zero value is 0. Int values never share mutable state, so they may be
// copied and used from multiple goroutines freely.
//
// The stored limbs are not a canonical form; compare values using Cmp or
// Equal, never with == or reflect.DeepEqual.
type Int struct {
	limbs []uint32
	sign  uint32
}

// newInt takes ownership of limbs and strips any high limbs made redundant
// by the sign limb.
func newInt(limbs []uint32, sign uint32) Int {
	n := len(limbs)
	for n > 0 && limbs[n-1] == sign {
		n--
	}
	if n == 0 {
		return Int{sign: sign}
	}
	return Int{limbs: limbs[:n:n], sign: sign}
}

// IntFromLimbs creates an Int from little-endian two's complement limbs and a
// sign limb, which must be either 0 or 0xFFFFFFFF. The sign limb is repeated
// forever above the last limb, so IntFromLimbs([]uint32{0}, 0xFFFFFFFF) is
// -4294967296.
//
// limbs is copied; changing it afterwards does not affect the result.
func IntFromLimbs(limbs []uint32, sign uint32) Int {
	if sign != signPos && sign != signNeg {
		panic("limbint: sign limb must be 0 or 0xFFFFFFFF")
	}
	cp := make([]uint32, len(limbs))
	copy(cp, limbs)
	return newInt(cp, sign)
}

func IntFromInt64(v int64) Int {
	sign := signPos
	if v < 0 {
		sign = signNeg
	}
	return newInt([]uint32{uint32(v), uint32(v >> 32)}, sign)
}

func IntFromUint64(v uint64) Int {
	return newInt([]uint32{uint32(v), uint32(v >> 32)}, signPos)
}

func IntFrom32(v int32) Int   { return IntFromInt64(int64(v)) }
func IntFromInt(v int) Int    { return IntFromInt64(int64(v)) }
func IntFromU32(v uint32) Int { return newInt([]uint32{v}, signPos) }

// IntFromBigInt creates an Int from a big.Int. The conversion is always
// exact.
func IntFromBigInt(v *big.Int) Int {
	words := v.Bits()

	var mag []uint32
	switch intSize {
	case 64:
		mag = make([]uint32, len(words)*2)
		for i, w := range words {
			mag[i*2] = uint32(w)
			mag[i*2+1] = uint32(uint64(w) >> 32)
		}
	case 32:
		mag = make([]uint32, len(words))
		for i, w := range words {
			mag[i] = uint32(w)
		}
	default:
		panic("limbint: unsupported bit size")
	}

	return fromMag(trimMag(mag), v.Sign() < 0)
}

// fromMag builds an Int from an unsigned magnitude. It takes ownership of
// mag when neg is false.
func fromMag(mag []uint32, neg bool) Int {
	if len(mag) == 0 {
		return Int{}
	}
	if !neg {
		return newInt(mag, signPos)
	}

	out := make([]uint32, len(mag)+1)
	carry := uint32(1)
	for i := range out {
		var v uint32
		if i < len(mag) {
			v = mag[i]
		}
		out[i], carry = bits.Add32(^v, 0, carry)
	}
	return newInt(out, signNeg)
}

// mag returns the absolute value of i as a trimmed magnitude. For
// non-negative values the result aliases i's limbs and must not be modified.
func (i Int) mag() []uint32 {
	if i.sign == signPos {
		return i.limbs
	}

	out := make([]uint32, len(i.limbs)+1)
	carry := uint32(1)
	for k := range out {
		out[k], carry = bits.Add32(^i.Limb(k), 0, carry)
	}
	return trimMag(out)
}

// Raw returns a copy of the stored limbs and the sign limb. See IntFromLimbs
// for the counterpart. The returned limbs are trimmed, but are not
// guaranteed to be the shortest possible encoding of the value.
func (i Int) Raw() (limbs []uint32, sign uint32) {
	limbs = make([]uint32, len(i.limbs))
	copy(limbs, i.limbs)
	return limbs, i.sign
}

// Limb returns the nth limb of the two's complement representation of i,
// extended with sign limbs past the stored ones. n must not be negative.
func (i Int) Limb(n int) uint32 {
	if n < len(i.limbs) {
		return i.limbs[n]
	}
	return i.sign
}

func (i Int) IsZero() bool     { return i.sign == signPos && len(i.limbs) == 0 }
func (i Int) IsNegative() bool { return i.sign != signPos }
func (i Int) IsOdd() bool      { return i.Limb(0)&1 == 1 }

func (i Int) Sign() int {
	if i.sign != signPos {
		return -1
	} else if len(i.limbs) == 0 {
		return 0
	}
	return 1
}

// BitLen returns the length of the absolute value of i in bits, like
// big.Int.BitLen. The bit length of 0 is 0.
func (i Int) BitLen() int {
	return bitLenMag(i.mag())
}

// Int64 returns i as an int64, and reports whether the conversion was exact.
func (i Int) Int64() (v int64, ok bool) {
	v = int64(uint64(i.Limb(0)) | uint64(i.Limb(1))<<32)
	return v, len(i.limbs) <= 2 && (v < 0) == i.IsNegative()
}

// IsInt64 reports whether i can be represented as an int64.
func (i Int) IsInt64() bool {
	_, ok := i.Int64()
	return ok
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (i Int) AsBigInt() *big.Int {
	mag := i.mag()
	var words []big.Word

	switch intSize {
	case 64:
		words = make([]big.Word, (len(mag)+1)/2)
		for k, v := range mag {
			words[k/2] |= big.Word(uint64(v) << (32 * uint(k%2)))
		}
	case 32:
		words = make([]big.Word, len(mag))
		for k, v := range mag {
			words[k] = big.Word(v)
		}
	default:
		panic("limbint: unsupported bit size")
	}

	b := new(big.Int).SetBits(words)
	if i.IsNegative() {
		b.Neg(b)
	}
	return b
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
//
func (i Int) Cmp(n Int) int {
	if i.sign != n.sign {
		if i.sign != signPos {
			return -1
		}
		return 1
	}

	// With equal sign limbs, two's complement limbs order the same way as
	// unsigned ones.
	ln := len(i.limbs)
	if len(n.limbs) > ln {
		ln = len(n.limbs)
	}
	for k := ln - 1; k >= 0; k-- {
		a, b := i.Limb(k), n.Limb(k)
		if a < b {
			return -1
		} else if a > b {
			return 1
		}
	}
	return 0
}

func (i Int) Equal(n Int) bool            { return i.Cmp(n) == 0 }
func (i Int) GreaterThan(n Int) bool      { return i.Cmp(n) > 0 }
func (i Int) GreaterOrEqualTo(n Int) bool { return i.Cmp(n) >= 0 }
func (i Int) LessThan(n Int) bool         { return i.Cmp(n) < 0 }
func (i Int) LessOrEqualTo(n Int) bool    { return i.Cmp(n) <= 0 }

func maxLimbs(a, b Int) int {
	if len(a.limbs) > len(b.limbs) {
		return len(a.limbs)
	}
	return len(b.limbs)
}

func signFromTop(limbs []uint32) uint32 {
	if limbs[len(limbs)-1]&topBit != 0 {
		return signNeg
	}
	return signPos
}

// Add returns the sum i+n.
func (i Int) Add(n Int) Int {
	// Both operands are within ±2^(32*(ln-1)), so the sum fits in ln signed
	// limbs and the top bit of the result is its sign:
	ln := maxLimbs(i, n) + 1
	out := make([]uint32, ln)
	var carry uint32
	for k := 0; k < ln; k++ {
		out[k], carry = bits.Add32(i.Limb(k), n.Limb(k), carry)
	}
	return newInt(out, signFromTop(out))
}

// Sub returns the difference i-n.
func (i Int) Sub(n Int) Int {
	ln := maxLimbs(i, n) + 1
	out := make([]uint32, ln)
	var borrow uint32
	for k := 0; k < ln; k++ {
		out[k], borrow = bits.Sub32(i.Limb(k), n.Limb(k), borrow)
	}
	return newInt(out, signFromTop(out))
}

func (i Int) Inc() Int { return i.Add(one) }
func (i Int) Dec() Int { return i.Sub(one) }

func (i Int) Neg() Int {
	if i.IsZero() {
		return i
	}
	return zero.Sub(i)
}

func (i Int) Abs() Int {
	if i.IsNegative() {
		return i.Neg()
	}
	return i
}

// Mul returns the product i*n.
func (i Int) Mul(n Int) Int {
	if i.IsZero() || n.IsZero() {
		return Int{}
	}
	return fromMag(mulMag(i.mag(), n.mag()), i.IsNegative() != n.IsNegative())
}

// QuoRem returns the quotient q and remainder r of i/by. If by is zero,
// ErrDivisionByZero is returned.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = i/by      with the result truncated to zero
//	r = i - by*q
//
// r therefore has the same sign as i, or is zero.
func (i Int) QuoRem(by Int) (q, r Int, err error) {
	if by.IsZero() {
		return q, r, ErrDivisionByZero
	}
	if i.IsZero() {
		return q, r, nil
	}

	qm, rm := quoRemMag(i.mag(), by.mag())
	q = fromMag(qm, i.IsNegative() != by.IsNegative())
	r = fromMag(rm, i.IsNegative())
	return q, r, nil
}

// Quo returns the quotient i/by, truncated towards zero. See QuoRem.
func (i Int) Quo(by Int) (Int, error) {
	q, _, err := i.QuoRem(by)
	return q, err
}

// Mod returns the remainder of i/by. The remainder takes the sign of i, so
// IntFromInt64(-7).Mod(IntFromInt64(2)) is -1. See QuoRem.
func (i Int) Mod(by Int) (Int, error) {
	_, r, err := i.QuoRem(by)
	return r, err
}

func (i Int) Not() Int {
	out := make([]uint32, len(i.limbs))
	for k, v := range i.limbs {
		out[k] = ^v
	}
	return newInt(out, ^i.sign)
}

func (i Int) And(n Int) Int {
	out := make([]uint32, maxLimbs(i, n))
	for k := range out {
		out[k] = i.Limb(k) & n.Limb(k)
	}
	return newInt(out, i.sign&n.sign)
}

func (i Int) Or(n Int) Int {
	out := make([]uint32, maxLimbs(i, n))
	for k := range out {
		out[k] = i.Limb(k) | n.Limb(k)
	}
	return newInt(out, i.sign|n.sign)
}

func (i Int) Xor(n Int) Int {
	out := make([]uint32, maxLimbs(i, n))
	for k := range out {
		out[k] = i.Limb(k) ^ n.Limb(k)
	}
	return newInt(out, i.sign^n.sign)
}

// Lsh returns i << n.
func (i Int) Lsh(n uint) Int {
	if n == 0 || i.IsZero() {
		return i
	}

	w, s := int(n/32), n%32
	src := len(i.limbs) + 1
	out := make([]uint32, src+w)
	for k := 0; k < src; k++ {
		v := i.Limb(k) << s
		if k > 0 {
			v |= i.Limb(k-1) >> (32 - s)
		}
		out[k+w] = v
	}
	return newInt(out, i.sign)
}

// Rsh returns i >> n. Like Go's >> on signed integers and big.Int.Rsh, this
// is an arithmetic shift, rounding towards negative infinity.
func (i Int) Rsh(n uint) Int {
	if n == 0 {
		return i
	}

	w, s := n/32, n%32
	if w >= uint(len(i.limbs)) {
		return Int{sign: i.sign}
	}

	ln := len(i.limbs) - int(w)
	out := make([]uint32, ln)
	for k := 0; k < ln; k++ {
		out[k] = (i.Limb(k+int(w)) >> s) | (i.Limb(k+int(w)+1) << (32 - s))
	}
	return newInt(out, i.sign)
}
