package procedural

import (
	"bytes"

	"github.com/matzehuels/orbital/pkg/attrs"
)

// EngineName identifies this generator in configuration and cache keys.
const EngineName = "procedural"

// FormatVersion changes whenever the rendered output of any index changes.
// It is folded into cache keys so stale artwork is never served.
const FormatVersion = "procedural/v1"

// Attribute keys, in output order.
const (
	KeyArtStyle     = "art_style"
	KeyColorPalette = "color_palette"
	KeyPatternType  = "pattern_type"
	KeyComplexity   = "complexity"
	KeySymmetry     = "symmetry"
	KeyEnergyLevel  = "energy_level"
	KeyRarityScore  = "rarity_score"
)

// Generator renders attributes and artwork from the index alone. It holds
// no state and is safe for concurrent use.
type Generator struct{}

// New returns a procedural generator.
func New() *Generator { return &Generator{} }

// Name returns [EngineName].
func (*Generator) Name() string { return EngineName }

// Fingerprint returns [FormatVersion].
func (*Generator) Fingerprint() string { return FormatVersion }

// Attributes returns the classified traits of index and its rarity score.
// It never fails; range checking is the caller's job.
func (*Generator) Attributes(index uint64) (attrs.Set, error) {
	return Describe(Classify(index)), nil
}

// Image returns the SVG document for index. It never fails.
func (*Generator) Image(index uint64) ([]byte, error) {
	return Render(index), nil
}

// Describe converts traits into the attribute document.
func Describe(t Traits) attrs.Set {
	return attrs.New(
		attrs.Entry{Key: KeyArtStyle, Value: attrs.String(t.Style.DisplayName())},
		attrs.Entry{Key: KeyColorPalette, Value: attrs.String(t.PaletteName())},
		attrs.Entry{Key: KeyPatternType, Value: attrs.String(t.PatternName())},
		attrs.Entry{Key: KeyComplexity, Value: attrs.String(t.ComplexityName())},
		attrs.Entry{Key: KeySymmetry, Value: attrs.String(t.SymmetryName())},
		attrs.Entry{Key: KeyEnergyLevel, Value: attrs.String(t.EnergyName())},
		attrs.Entry{Key: KeyRarityScore, Value: attrs.Uint(t.RarityScore())},
	)
}

// Render composes the full document: gradients, background and texture, the
// style's pattern, sparkles, and the index watermark.
func Render(index uint64) []byte {
	t := Classify(index)
	colors := t.Colors()

	var buf bytes.Buffer
	buf.Grow(16 << 10)
	buf.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	buf.WriteString("<svg width=\"100%\" height=\"100%\" viewBox=\"0 0 400 400\" xmlns=\"http://www.w3.org/2000/svg\">\n")

	renderGradients(&buf, colors)
	buf.WriteString(`<rect width="400" height="400" fill="url(#bg-gradient)"/>`)
	renderTexture(&buf, index)
	RenderPattern(&buf, t.Style, index, colors)
	renderSparkles(&buf, index)

	buf.WriteString(`<text x="20" y="380" font-family="monospace" font-size="12" fill="white" opacity="0.6">#` +
		itoa(index) + "</text>\n")
	buf.WriteString("</svg>")
	return buf.Bytes()
}

func renderGradients(buf *bytes.Buffer, colors Palette) {
	buf.WriteString("<defs>\n")
	buf.WriteString(`<radialGradient id="bg-gradient" cx="50%" cy="50%" r="70%">` + "\n")
	buf.WriteString(`<stop offset="0%" style="stop-color:` + colors[0] + `;stop-opacity:0.8"/>` + "\n")
	buf.WriteString(`<stop offset="100%" style="stop-color:` + colors[1] + `;stop-opacity:1"/>` + "\n")
	buf.WriteString("</radialGradient>\n")
	buf.WriteString(`<linearGradient id="pattern-gradient" x1="0%" y1="0%" x2="100%" y2="100%">` + "\n")
	buf.WriteString(`<stop offset="0%" style="stop-color:` + colors[2] + `"/>` + "\n")
	buf.WriteString(`<stop offset="50%" style="stop-color:` + colors[3] + `"/>` + "\n")
	buf.WriteString(`<stop offset="100%" style="stop-color:` + colors[4] + `"/>` + "\n")
	buf.WriteString("</linearGradient>\n")
	buf.WriteString("</defs>\n")
}
