// Package procedural derives token attributes and artwork purely from the
// token index.
//
// # Classification
//
// Six trait categories are read off the index like digits of a mixed-radix
// number: art style is the lowest digit (radix 6), then color palette (12),
// pattern type (6), complexity (5), symmetry (4) and energy level (4). Every
// combination appears exactly once in each block of 34560 consecutive
// indices.
//
// # Rendering
//
// Each art style has its own pattern algorithm. Positions come from integer
// sequences of the form index*prime*(i+1)*k mod bound; the primes and
// multipliers are part of the output format and must never be tuned. All
// trigonometry goes through [detmath] and all numbers are printed with
// shortest round-trip formatting, so the SVG text is identical across
// platforms.
//
// # Usage
//
//	g := procedural.New()
//	set, _ := g.Attributes(42)
//	svg, _ := g.Image(42)
//
// [detmath]: github.com/matzehuels/orbital/pkg/detmath
package procedural
