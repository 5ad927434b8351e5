/*
Package limbint provides an arbitrary-precision signed integer (Int), stored
as little-endian 32-bit two's complement limbs plus a sign limb that stands in
for the infinite run of limbs above them.

Int is a value type; all operations return new values and nothing is ever
modified in place, so an Int can be shared between goroutines without
coordination.

Simple example:

	a, _ := IntFromString("304704862073361391914321619654827369776")
	b, _ := IntFromString("77393247566944052149773810817307943505")
	fmt.Println(a.Mul(b))
	// Output: 23582098825295199538298333106941184620809785262540690532878112097410752504880

Int can be created from a variety of sources:

	IntFromLimbs(limbs []uint32, sign uint32) Int
	IntFromInt64(v int64) Int
	IntFromUint64(v uint64) Int
	IntFrom32(v int32) Int
	IntFromU32(v uint32) Int
	IntFromInt(v int) Int
	IntFromString(s string) (Int, error)
	IntFromStringRadix(s string, radix int) (Int, error)
	IntFromBigInt(v *big.Int) Int
	IntFromFloat64(f float64) (out Int, inRange bool)

The limb representation is not canonical: IntFromLimbs([]uint32{1, 0}, 0) and
IntFromLimbs([]uint32{1}, 0) are the same number. Use Cmp or Equal to compare
values.

Division (Quo, QuoRem, Mod) truncates towards zero like Go's / and %
operators, so a remainder always takes the sign of the dividend. Dividing by
zero returns ErrDivisionByZero rather than panicking.

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package limbint
