// Package detmath provides sine and cosine with a fixed, platform-independent
// evaluation order.
//
// Generated artwork is consensus-relevant: the SVG text for a token must be
// identical on every machine. The standard library's trigonometric functions
// are correct to within an ulp, but the Go specification allows compilers to
// fuse x*y+z into a single FMA instruction on some targets, and a few
// architectures replace math.Sin with assembly. Either can change the last
// bit of a coordinate and therefore the printed text.
//
// Sin and Cos here use the Cephes minimax polynomials with Cody-Waite
// argument reduction. Every product is wrapped in an explicit float64
// conversion, which the language defines as a rounding point, so no fused
// operation can be introduced. Arguments at or beyond 2^29 are reduced with
// math.Mod first; fmod is exact, so that step is deterministic too.
//
// The results are within a few ulps of math.Sin and math.Cos but are not
// guaranteed to be bit-identical to them.
package detmath
