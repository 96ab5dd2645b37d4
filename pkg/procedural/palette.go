package procedural

// Palette is the five colors a pattern cycles through.
type Palette [5]string

var palettes = [numPalettes]Palette{
	{"hsl(10, 80%, 60%)", "hsl(30, 90%, 50%)", "hsl(50, 85%, 55%)", "hsl(20, 75%, 45%)", "hsl(340, 70%, 50%)"},   // Sunset
	{"hsl(200, 80%, 40%)", "hsl(220, 90%, 60%)", "hsl(180, 85%, 45%)", "hsl(240, 70%, 50%)", "hsl(160, 75%, 40%)"}, // Ocean
	{"hsl(120, 60%, 30%)", "hsl(100, 70%, 40%)", "hsl(80, 65%, 45%)", "hsl(140, 55%, 35%)", "hsl(60, 60%, 50%)"},   // Forest
	{"hsl(300, 80%, 60%)", "hsl(180, 90%, 50%)", "hsl(60, 85%, 55%)", "hsl(320, 75%, 45%)", "hsl(200, 70%, 50%)"},  // Aurora
	{"hsl(0, 90%, 50%)", "hsl(20, 95%, 60%)", "hsl(40, 90%, 55%)", "hsl(10, 85%, 45%)", "hsl(350, 80%, 40%)"},      // Volcanic
	{"hsl(30, 70%, 50%)", "hsl(45, 80%, 60%)", "hsl(60, 75%, 55%)", "hsl(20, 65%, 45%)", "hsl(40, 70%, 40%)"},      // Desert
	{"hsl(270, 80%, 50%)", "hsl(240, 90%, 60%)", "hsl(300, 85%, 55%)", "hsl(210, 75%, 45%)", "hsl(330, 70%, 50%)"}, // Cosmic
	{"hsl(120, 100%, 50%)", "hsl(300, 100%, 50%)", "hsl(60, 100%, 50%)", "hsl(180, 100%, 50%)", "hsl(0, 100%, 50%)"}, // Neon
	{"hsl(300, 40%, 80%)", "hsl(60, 50%, 85%)", "hsl(180, 45%, 80%)", "hsl(120, 40%, 75%)", "hsl(30, 50%, 85%)"}, // Pastel
	{"hsl(0, 0%, 20%)", "hsl(0, 0%, 60%)", "hsl(0, 0%, 80%)", "hsl(0, 0%, 40%)", "hsl(0, 0%, 90%)"},              // Monochrome
	{"hsl(0, 80%, 50%)", "hsl(60, 80%, 50%)", "hsl(120, 80%, 50%)", "hsl(240, 80%, 50%)", "hsl(300, 80%, 50%)"},  // Rainbow
	{"hsl(30, 60%, 40%)", "hsl(20, 70%, 30%)", "hsl(40, 65%, 50%)", "hsl(10, 55%, 35%)", "hsl(50, 60%, 45%)"},    // Earth
}

// Colors returns the palette for t.
func (t Traits) Colors() Palette { return palettes[t.Palette] }

// At cycles through the palette.
func (p Palette) At(i uint64) string { return p[i%uint64(len(p))] }
