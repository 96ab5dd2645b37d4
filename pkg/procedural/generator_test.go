package procedural

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
)

func TestAttributesIndexZero(t *testing.T) {
	set, err := New().Attributes(0)
	if err != nil {
		t.Fatalf("Attributes() error: %v", err)
	}
	data, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"art_style":"Geometric Fractal","color_palette":"Sunset","pattern_type":"Organic",` +
		`"complexity":"Minimal","symmetry":"Radial","energy_level":"Calm","rarity_score":110}`
	if string(data) != want {
		t.Errorf("attributes = %s, want %s", data, want)
	}
}

func TestImageStructure(t *testing.T) {
	svg, err := New().Image(42)
	if err != nil {
		t.Fatalf("Image() error: %v", err)
	}
	s := string(svg)

	if !strings.HasPrefix(s, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("missing XML prolog")
	}
	if !strings.HasSuffix(s, "</svg>") {
		t.Error("document does not end with </svg>")
	}
	if !strings.Contains(s, `viewBox="0 0 400 400"`) {
		t.Error("missing fixed viewBox")
	}
	if !strings.Contains(s, `opacity="0.6">#42</text>`) {
		t.Error("missing index watermark")
	}
	if got := strings.Count(s, `fill="white" opacity="0.1"/>`); got != 20 {
		t.Errorf("texture dots = %d, want 20", got)
	}
	if got := strings.Count(s, "<animate "); got != 10 {
		t.Errorf("sparkles = %d, want 10", got)
	}
}

func TestImageWellFormed(t *testing.T) {
	g := New()
	for i := uint64(0); i < 12; i++ {
		svg, _ := g.Image(i)
		dec := xml.NewDecoder(bytes.NewReader(svg))
		for {
			_, err := dec.Token()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				t.Fatalf("index %d: malformed XML: %v", i, err)
			}
		}
	}
}

func TestImageLayerOrder(t *testing.T) {
	svg := string(Render(3))
	order := []string{"<defs>", `fill="url(#bg-gradient)"`, `opacity="0.1"/>`, `opacity="0.8"/>`, "<animate ", "</text>"}
	last := -1
	for _, marker := range order {
		i := strings.Index(svg, marker)
		if i < 0 {
			t.Fatalf("missing %s", marker)
		}
		if i < last {
			t.Errorf("%s appears out of order", marker)
		}
		last = i
	}
}

func TestImageDeterministic(t *testing.T) {
	g := New()
	for _, i := range []uint64{0, 1, 2, 3, 4, 5, 999, 3332} {
		a, _ := g.Image(i)
		b, _ := g.Image(i)
		if !bytes.Equal(a, b) {
			t.Errorf("Image(%d) differs between calls", i)
		}
	}
}

func TestImageDistinctPerIndex(t *testing.T) {
	g := New()
	seen := make(map[string]uint64)
	for i := uint64(0); i < 60; i++ {
		svg, _ := g.Image(i)
		if prev, ok := seen[string(svg)]; ok {
			t.Fatalf("Image(%d) identical to Image(%d)", i, prev)
		}
		seen[string(svg)] = i
	}
}

func TestConcurrentRender(t *testing.T) {
	g := New()
	want, _ := g.Image(77)

	var wg sync.WaitGroup
	errs := make(chan uint64, 16)
	for w := 0; w < 16; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, _ := g.Image(77)
			if !bytes.Equal(got, want) {
				errs <- 77
			}
		}()
	}
	wg.Wait()
	close(errs)
	for i := range errs {
		t.Errorf("concurrent Image(%d) differs", i)
	}
}
