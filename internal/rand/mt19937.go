// Package rand provides the reference generator the LCG is validated against.
// MT19937 here reproduces the 32-bit Mersenne Twister of C++'s std::mt19937,
// and Float64 follows std::uniform_real_distribution<double>, which draws two
// 32-bit words per value.
package rand

const (
	mtN        = 624
	mtM        = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	temperingB = 0x9d2c5680
	temperingC = 0xefc60000

	// DefaultSeed is std::mt19937's default seed.
	DefaultSeed = 5489
)

// MT19937 is a 32-bit Mersenne Twister.
type MT19937 struct {
	mt  [mtN]uint32
	mti int
}

// NewMT19937 creates a new Mersenne Twister with the given seed.
func NewMT19937(seed uint32) *MT19937 {
	mt := &MT19937{}
	mt.Seed(seed)
	return mt
}

// Seed initializes the generator with a seed.
func (mt *MT19937) Seed(seed uint32) {
	mt.mt[0] = seed
	for i := 1; i < mtN; i++ {
		mt.mt[i] = 1812433253*(mt.mt[i-1]^(mt.mt[i-1]>>30)) + uint32(i)
	}
	mt.mti = mtN
}

// twist regenerates the whole state block.
func (mt *MT19937) twist() {
	for kk := 0; kk < mtN; kk++ {
		y := (mt.mt[kk] & upperMask) | (mt.mt[(kk+1)%mtN] & lowerMask)
		next := mt.mt[(kk+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			next ^= matrixA
		}
		mt.mt[kk] = next
	}
	mt.mti = 0
}

// Uint32 generates a random uint32.
func (mt *MT19937) Uint32() uint32 {
	if mt.mti >= mtN {
		mt.twist()
	}

	y := mt.mt[mt.mti]
	mt.mti++

	// Tempering
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18

	return y
}

// Uint64 combines two outputs, low word first, as std::mt19937 would feed a
// 64-bit consumer. It makes MT19937 a math/rand/v2 Source.
func (mt *MT19937) Uint64() uint64 {
	lo := uint64(mt.Uint32())
	hi := uint64(mt.Uint32())
	return hi<<32 | lo
}

// Float64 generates a random float64 in [0, 1) the way
// std::generate_canonical<double, 53> does with a 32-bit engine:
// (first + second*2^32) / 2^64, clamped below 1.
func (mt *MT19937) Float64() float64 {
	lo := float64(mt.Uint32())
	hi := float64(mt.Uint32())
	r := (lo + hi*4294967296.0) * (1.0 / 18446744073709551616.0)
	if r >= 1 {
		r = 1 - 1.0/9007199254740992.0
	}
	return r
}

// Float32 generates a random float32 in [0, 1).
func (mt *MT19937) Float32() float32 {
	f := float32(mt.Float64())
	if f >= 1 {
		f = 1 - 1.0/16777216.0
	}
	return f
}

// Fill overwrites dst with uniform values in [0, 1).
func (mt *MT19937) Fill(dst []float64) {
	for i := range dst {
		dst[i] = mt.Float64()
	}
}
