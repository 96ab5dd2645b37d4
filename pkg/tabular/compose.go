package tabular

import (
	"bytes"
	"strconv"

	"github.com/matzehuels/orbital/pkg/errors"
)

// Template categories that are drawn from the species rather than from a
// packed field of their own.
const (
	LayerBody    = "body"
	LayerNipples = "nipples"
	LayerEars    = "ears"
	LayerHead    = "head"
)

// Layer is one step of the drawing order: a template category and the
// packed category whose trait picks the fragment.
type Layer struct {
	Template string
	Trait    string
	Optional bool // skipped when the trait is None
}

// Layers is the fixed drawing order, back to front.
var Layers = []Layer{
	{Template: Background, Trait: Background},
	{Template: LayerBody, Trait: Species},
	{Template: LayerNipples, Trait: Species},
	{Template: BodyAccessory, Trait: BodyAccessory, Optional: true},
	{Template: LayerEars, Trait: Species},
	{Template: LayerHead, Trait: Species},
	{Template: HeadAccessory, Trait: HeadAccessory, Optional: true},
	{Template: Nose, Trait: Nose},
	{Template: OuterEyes, Trait: OuterEyes},
	{Template: Eyes, Trait: Eyes},
	{Template: Mouth, Trait: Mouth},
}

// Compositor stacks library fragments into one SVG document.
type Compositor struct {
	lib *TemplateLibrary
}

// NewCompositor returns a compositor drawing from lib.
func NewCompositor(lib *TemplateLibrary) *Compositor {
	return &Compositor{lib: lib}
}

// Compose renders t. A missing fragment fails the whole document.
func (c *Compositor) Compose(t Traits) ([]byte, error) {
	w, h := c.lib.Canvas()
	ws, hs := strconv.FormatUint(w, 10), strconv.FormatUint(h, 10)

	var buf bytes.Buffer
	buf.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 ` + ws + ` ` + hs +
		`" width="` + ws + `" height="` + hs + `">` + "\n")

	for _, l := range Layers {
		name := t.Get(l.Trait)
		if l.Optional && name == None {
			continue
		}
		frag, err := c.lib.Fragment(l.Template, name)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeMissingTemplate, err, "compose %s layer", l.Template)
		}
		buf.WriteString(frag)
		buf.WriteByte('\n')
	}

	buf.WriteString("</svg>")
	return buf.Bytes(), nil
}
