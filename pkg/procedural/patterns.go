package procedural

import (
	"bytes"
	"math"

	"github.com/matzehuels/orbital/pkg/detmath"
)

// Seed primes, one per generator. Changing any of them changes every image.
const (
	primeTexture  = 7919
	primeFractal  = 1931
	primeFlow     = 2017
	primePacking  = 2099
	primeMandala  = 2111 // reserved; the mandala layout ignores the index
	primeWave     = 2131
	primeCrystal  = 2141
	primeSparkles = 2153
)

// Canvas geometry shared by all patterns.
const (
	canvasSize = 400
	center     = 200.0
)

var mul = detmath.Mul

// RenderPattern writes the primitives of style for index into buf.
func RenderPattern(buf *bytes.Buffer, style ArtStyle, index uint64, colors Palette) {
	switch style {
	case GeometricFractal:
		renderFractal(buf, index, colors)
	case FlowField:
		renderFlowField(buf, index, colors)
	case CirclePacking:
		renderCirclePacking(buf, index, colors)
	case Mandala:
		renderMandala(buf, colors)
	case WaveInterference:
		renderWaves(buf, index, colors)
	case Crystalline:
		renderCrystals(buf, index, colors)
	}
}

// renderFractal draws six depths of rotated squares on rings around the
// center. Depth d has min(4^d, 20) squares of side 200/2^d.
func renderFractal(buf *bytes.Buffer, index uint64, colors Palette) {
	for depth := uint64(0); depth < 6; depth++ {
		count := min(uint64(1)<<(2*depth), 20)
		size := 200.0 / float64(uint64(1)<<depth)
		ring := 50.0 + mul(float64(depth), 20.0)
		color := colors.At(depth)

		for i := uint64(0); i < count; i++ {
			angle := mul(seedFloat(index, primeFractal*(depth+1)*(i+1)*41), 0.01)
			x := center + mul(detmath.Cos(angle), ring)
			y := center + mul(detmath.Sin(angle), ring)
			rotation := seedMod(index, primeFractal*(i+1)*73, 360)

			buf.WriteString(`<rect x="` + num(x-size/2.0) + `" y="` + num(y-size/2.0) +
				`" width="` + num(size) + `" height="` + num(size) +
				`" fill="` + color + `" opacity="0.7" transform="rotate(` +
				itoa(rotation) + ` ` + num(x) + ` ` + num(y) + `)"/>`)
		}
	}
}

// renderFlowField traces 30 curves of 20 steps through a sinusoidal vector
// field, clamped to the canvas.
func renderFlowField(buf *bytes.Buffer, index uint64, colors Palette) {
	phase := mul(seedFloat(index, primeFlow), 0.01)

	for i := uint64(0); i < 30; i++ {
		x := float64(seedMod(index, primeFlow*(i+1)*83, canvasSize))
		y := float64(seedMod(index, primeFlow*(i+1)*97, canvasSize))

		var path bytes.Buffer
		path.WriteString("M " + num(x) + " " + num(y))
		for step := 0; step < 20; step++ {
			fx := detmath.Sin(mul(mul(x/canvasSize, math.Pi), 4.0) + phase)
			fy := detmath.Cos(mul(mul(y/canvasSize, math.Pi), 4.0) + phase)

			x = clamp(x+mul(fx, 8.0), 0, canvasSize)
			y = clamp(y+mul(fy, 8.0), 0, canvasSize)
			path.WriteString(" L " + num(x) + " " + num(y))
		}

		buf.WriteString(`<path d="` + path.String() + `" stroke="` + colors.At(i) +
			`" stroke-width="2" fill="none" opacity="0.8"/>`)
	}
}

// renderCirclePacking scatters 50 outlined circles inside a 20px margin.
func renderCirclePacking(buf *bytes.Buffer, index uint64, colors Palette) {
	for i := uint64(0); i < 50; i++ {
		cx := seedMod(index, primePacking*(i+1)*89, 360) + 20
		cy := seedMod(index, primePacking*(i+1)*103, 360) + 20
		r := seedMod(index, primePacking*(i+1)*67, 40) + 5

		buf.WriteString(`<circle cx="` + itoa(cx) + `" cy="` + itoa(cy) + `" r="` + itoa(r) +
			`" fill="` + colors.At(i) + `" opacity="0.6" stroke="white" stroke-width="1"/>`)
	}
}

// renderMandala places 8*ring dots on each of seven concentric rings. The
// layout is the same for every index; only the palette varies.
func renderMandala(buf *bytes.Buffer, colors Palette) {
	for ring := uint64(1); ring < 8; ring++ {
		radius := mul(float64(ring), 25.0)
		points := ring * 8
		size := 15.0 - mul(float64(ring), 1.5)

		for i := uint64(0); i < points; i++ {
			angle := mul(mul(float64(i)/float64(points), 2.0), math.Pi)
			x := center + mul(detmath.Cos(angle), radius)
			y := center + mul(detmath.Sin(angle), radius)

			buf.WriteString(`<circle cx="` + num(x) + `" cy="` + num(y) + `" r="` + num(size) +
				`" fill="` + colors.At(ring+i) + `" opacity="0.8"/>`)
		}
	}
}

// renderWaves samples five sine waves every 5 units across the canvas.
func renderWaves(buf *bytes.Buffer, index uint64, colors Palette) {
	for w := uint64(0); w < 5; w++ {
		freq := 0.02 + mul(float64(w), 0.01)
		phase := mul(seedFloat(index, primeWave*(w+1)), 0.01)

		var path bytes.Buffer
		for x := uint64(0); x < canvasSize; x += 5 {
			y := center + mul(50.0, detmath.Sin(mul(float64(x), freq)+phase))
			if x == 0 {
				path.WriteString("M " + itoa(x) + " " + num(y))
			} else {
				path.WriteString(" L " + itoa(x) + " " + num(y))
			}
		}

		buf.WriteString(`<path d="` + path.String() + `" stroke="` + colors.At(w) +
			`" stroke-width="3" fill="none" opacity="0.7"/>`)
	}
}

// renderCrystals draws twelve regular polygons with 3 to 6 sides.
func renderCrystals(buf *bytes.Buffer, index uint64, colors Palette) {
	for c := uint64(0); c < 12; c++ {
		cx := float64(seedMod(index, primeCrystal*(c+1)*79, 300) + 50)
		cy := float64(seedMod(index, primeCrystal*(c+1)*83, 300) + 50)
		sides := 3 + c%4
		radius := float64(20 + seedMod(index, primeCrystal*(c+1)*71, 30))

		var points bytes.Buffer
		for i := uint64(0); i < sides; i++ {
			angle := mul(mul(float64(i)/float64(sides), 2.0), math.Pi)
			x := cx + mul(detmath.Cos(angle), radius)
			y := cy + mul(detmath.Sin(angle), radius)
			if i > 0 {
				points.WriteByte(' ')
			}
			points.WriteString(num(x) + "," + num(y))
		}

		buf.WriteString(`<polygon points="` + points.String() + `" fill="` + colors.At(c) +
			`" opacity="0.6" stroke="white" stroke-width="1"/>`)
	}
}

// renderTexture scatters 20 faint dots behind the pattern.
func renderTexture(buf *bytes.Buffer, index uint64) {
	for i := uint64(0); i < 20; i++ {
		x := seedMod(index, primeTexture*(i+1)*73, canvasSize)
		y := seedMod(index, primeTexture*(i+1)*97, canvasSize)
		r := seedMod(index, primeTexture*(i+1), 3) + 1
		buf.WriteString(`<circle cx="` + itoa(x) + `" cy="` + itoa(y) + `" r="` + itoa(r) +
			`" fill="white" opacity="0.1"/>`)
	}
}

// renderSparkles adds ten twinkling dots above the pattern.
func renderSparkles(buf *bytes.Buffer, index uint64) {
	for i := uint64(0); i < 10; i++ {
		x := seedMod(index, primeSparkles*(i+1)*91, canvasSize)
		y := seedMod(index, primeSparkles*(i+1)*101, canvasSize)
		r := seedMod(index, primeSparkles*(i+1)*61, 3) + 1
		buf.WriteString(`<circle cx="` + itoa(x) + `" cy="` + itoa(y) + `" r="` + itoa(r) +
			`" fill="white" opacity="0.8">` + "\n" +
			`<animate attributeName="opacity" values="0.8;0.2;0.8" dur="2s" repeatCount="indefinite"/>` + "\n" +
			`</circle>`)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
