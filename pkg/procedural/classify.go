package procedural

// Category sizes. Their running products are the divisors used by Classify.
const (
	numStyles     = 6
	numPalettes   = 12
	numPatterns   = 6
	numComplexity = 5
	numSymmetry   = 4
	numEnergy     = 4

	paletteDivisor    = numStyles
	patternDivisor    = paletteDivisor * numPalettes
	complexityDivisor = patternDivisor * numPatterns
	symmetryDivisor   = complexityDivisor * numComplexity
	energyDivisor     = symmetryDivisor * numSymmetry

	// Period is the number of distinct trait combinations. Indices that
	// differ by a multiple of Period share every trait.
	Period = energyDivisor * numEnergy
)

// ArtStyle selects the pattern algorithm.
type ArtStyle uint8

const (
	GeometricFractal ArtStyle = iota
	FlowField
	CirclePacking
	Mandala
	WaveInterference
	Crystalline
)

var styleIdents = [numStyles]string{
	"GeometricFractal", "FlowField", "CirclePacking", "Mandala", "WaveInterference", "Crystalline",
}

var styleNames = [numStyles]string{
	"Geometric Fractal", "Flow Field", "Circle Packing", "Sacred Mandala", "Wave Interference", "Crystalline Structure",
}

// String returns the identifier form, e.g. "GeometricFractal".
func (s ArtStyle) String() string { return styleIdents[s] }

// DisplayName returns the attribute value, e.g. "Geometric Fractal".
func (s ArtStyle) DisplayName() string { return styleNames[s] }

var (
	paletteNames    = [numPalettes]string{"Sunset", "Ocean", "Forest", "Aurora", "Volcanic", "Desert", "Cosmic", "Neon", "Pastel", "Monochrome", "Rainbow", "Earth"}
	patternNames    = [numPatterns]string{"Organic", "Geometric", "Hybrid", "Chaotic", "Ordered", "Flowing"}
	complexityNames = [numComplexity]string{"Minimal", "Simple", "Moderate", "Complex", "Intricate"}
	symmetryNames   = [numSymmetry]string{"Radial", "Bilateral", "Asymmetric", "Rotational"}
	energyNames     = [numEnergy]string{"Calm", "Balanced", "Dynamic", "Explosive"}
)

// Traits holds the category digits of one index. Each field is a zero-based
// position in its category's name list.
type Traits struct {
	Style      ArtStyle
	Palette    uint8
	Pattern    uint8
	Complexity uint8
	Symmetry   uint8
	Energy     uint8
}

// Classify splits index into its trait digits. It is total: every index,
// including ones past the collection supply, has a classification.
func Classify(index uint64) Traits {
	return Traits{
		Style:      ArtStyle(index % numStyles),
		Palette:    uint8(index / paletteDivisor % numPalettes),
		Pattern:    uint8(index / patternDivisor % numPatterns),
		Complexity: uint8(index / complexityDivisor % numComplexity),
		Symmetry:   uint8(index / symmetryDivisor % numSymmetry),
		Energy:     uint8(index / energyDivisor % numEnergy),
	}
}

// PaletteName returns the color palette attribute value.
func (t Traits) PaletteName() string { return paletteNames[t.Palette] }

// PatternName returns the pattern type attribute value.
func (t Traits) PatternName() string { return patternNames[t.Pattern] }

// ComplexityName returns the complexity attribute value.
func (t Traits) ComplexityName() string { return complexityNames[t.Complexity] }

// SymmetryName returns the symmetry attribute value.
func (t Traits) SymmetryName() string { return symmetryNames[t.Symmetry] }

// EnergyName returns the energy level attribute value.
func (t Traits) EnergyName() string { return energyNames[t.Energy] }
