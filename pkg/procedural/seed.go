package procedural

import (
	"math/big"
	"math/bits"
)

// Sequence terms are index*factor evaluated in 128 bits, where factor is a
// seed prime times the small per-element multipliers. The full product of
// any uint64 index fits, so no index wraps.

// seedMod returns index*factor mod m.
func seedMod(index, factor, m uint64) uint64 {
	hi, lo := bits.Mul64(index, factor)
	_, rem := bits.Div64(hi%m, lo, m)
	return rem
}

// seedFloat returns index*factor rounded to the nearest float64.
func seedFloat(index, factor uint64) float64 {
	hi, lo := bits.Mul64(index, factor)
	if hi == 0 {
		return float64(lo)
	}
	n := new(big.Int).SetUint64(hi)
	n.Lsh(n, 64).Or(n, new(big.Int).SetUint64(lo))
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}
