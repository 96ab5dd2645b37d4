package detmath

import "math"

// Pi/4 split into three parts for extended-precision reduction.
const (
	pi4A = 7.85398125648498535156e-1
	pi4B = 3.77489470793079817668e-8
	pi4C = 2.69515142907905952645e-15

	fourOverPi = 4 / math.Pi
	twoPi      = 2 * math.Pi

	// reduceThreshold bounds the Cody-Waite reduction; beyond it the
	// octant count no longer fits the split constants.
	reduceThreshold = 1 << 29
)

var sinCoeffs = [6]float64{
	1.58962301576546568060e-10,
	-2.50507477628578072866e-8,
	2.75573136213857245213e-6,
	-1.98412698295895385996e-4,
	8.33333333332211858878e-3,
	-1.66666666666666307295e-1,
}

var cosCoeffs = [6]float64{
	-1.13585365213876817300e-11,
	2.08757008419747316778e-9,
	-2.75573141792967388112e-7,
	2.48015872888517045348e-5,
	-1.38888888888730564116e-3,
	4.16666666666665929218e-2,
}

// mul rounds the product to float64, forbidding fusion with a following add.
func mul(a, b float64) float64 { return float64(a * b) }

// horner evaluates c[0]*z^5 + ... + c[5] with a rounding point after every
// multiplication.
func horner(c *[6]float64, z float64) float64 {
	p := c[0]
	for _, k := range c[1:] {
		p = mul(p, z) + k
	}
	return p
}

func sinKernel(z, zz float64) float64 {
	return z + mul(mul(z, zz), horner(&sinCoeffs, zz))
}

func cosKernel(zz float64) float64 {
	return 1.0 - mul(0.5, zz) + mul(mul(zz, zz), horner(&cosCoeffs, zz))
}

// reduce maps a non-negative x to an octant j in [0, 8) and a remainder z in
// [-Pi/4, Pi/4].
func reduce(x float64) (uint64, float64) {
	if x >= reduceThreshold {
		x = math.Mod(x, twoPi)
	}
	j := uint64(mul(x, fourOverPi))
	y := float64(j)
	if j&1 == 1 {
		j++
		y++
	}
	j &= 7
	z := ((x - mul(y, pi4A)) - mul(y, pi4B)) - mul(y, pi4C)
	return j, z
}

// Sin returns the sine of the radian argument x.
func Sin(x float64) float64 {
	switch {
	case x == 0 || math.IsNaN(x):
		return x
	case math.IsInf(x, 0):
		return math.NaN()
	}

	sign := false
	if x < 0 {
		x = -x
		sign = true
	}

	j, z := reduce(x)
	if j > 3 {
		sign = !sign
		j -= 4
	}

	zz := mul(z, z)
	var y float64
	if j == 1 || j == 2 {
		y = cosKernel(zz)
	} else {
		y = sinKernel(z, zz)
	}
	if sign {
		y = -y
	}
	return y
}

// Cos returns the cosine of the radian argument x.
func Cos(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}

	sign := false
	j, z := reduce(math.Abs(x))
	if j > 3 {
		j -= 4
		sign = !sign
	}
	if j > 1 {
		sign = !sign
	}

	zz := mul(z, z)
	var y float64
	if j == 1 || j == 2 {
		y = sinKernel(z, zz)
	} else {
		y = cosKernel(zz)
	}
	if sign {
		y = -y
	}
	return y
}

// Mul returns a*b rounded to float64. Callers building coordinates use it
// wherever a product feeds an addition, so the pair is never fused.
func Mul(a, b float64) float64 { return mul(a, b) }
