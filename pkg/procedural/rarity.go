package procedural

// Rarity weights. Scores are only compared with each other; the absolute
// numbers carry no meaning.
var styleWeight = [numStyles]uint64{
	GeometricFractal: 50,
	FlowField:        70,
	CirclePacking:    60,
	Mandala:          100,
	WaveInterference: 80,
	Crystalline:      90,
}

func paletteWeight(p uint8) uint64 {
	switch p {
	case 0, 11: // Sunset, Earth
		return 50
	case 1, 2: // Ocean, Forest
		return 40
	}
	return 30
}

func complexityWeight(c uint8) uint64 {
	switch c {
	case 4: // Intricate
		return 30
	case 3: // Complex
		return 20
	}
	return 10
}

// RarityScore returns the weighted rarity of t.
func (t Traits) RarityScore() uint64 {
	return styleWeight[t.Style] + paletteWeight(t.Palette) + complexityWeight(t.Complexity)
}

// RarityScore classifies index and returns its rarity score.
func RarityScore(index uint64) uint64 {
	return Classify(index).RarityScore()
}
