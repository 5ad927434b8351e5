package limbint

const (
	maxUint32 = 1<<32 - 1
	maxUint64 = 1<<64 - 1

	// Sign limb values. A sign limb stands in for the infinite run of limbs
	// above the stored ones.
	signPos uint32 = 0x00000000
	signNeg uint32 = 0xFFFFFFFF

	topBit uint32 = 0x80000000

	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64

	intSize = 32 << (^uint(0) >> 63)
)

var (
	zero Int
	one  = Int{limbs: []uint32{1}}
)

// radixChunk describes the largest power of a radix that fits in a limb, and
// how many digits of that radix it spans.
type radixChunk struct {
	pow    uint32
	digits int
}

var radixChunks [37]radixChunk

func init() {
	for radix := 2; radix <= 36; radix++ {
		pow, digits := uint64(radix), 1
		for pow*uint64(radix) <= maxUint32 {
			pow *= uint64(radix)
			digits++
		}
		radixChunks[radix] = radixChunk{pow: uint32(pow), digits: digits}
	}
}
