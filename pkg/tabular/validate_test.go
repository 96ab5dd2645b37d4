package tabular

import (
	"strings"
	"testing"

	"github.com/matzehuels/orbital/pkg/errors"
)

func TestValidateCompleteness(t *testing.T) {
	if err := ValidateCompleteness(loadTestTable(t), loadTestLibrary(t)); err != nil {
		t.Errorf("ValidateCompleteness() error: %v", err)
	}
}

func TestGapsReportsEverything(t *testing.T) {
	traits := NewTraitTable(map[string][]string{
		Background:    {"Blue"},
		OuterEyes:     {"Plain"},
		Nose:          {"Button"},
		Mouth:         {"Smile"},
		Eyes:          {"Round"},
		HeadAccessory: {"none", "Crown"},
		BodyAccessory: {"none"},
		Species:       {"Cat"},
	})
	lib := NewTemplateLibrary(map[string]map[string]string{
		Background: {"Blue": "<rect/>"},
		LayerBody:  {"Cat": "<ellipse/>"},
		LayerEars:  {"Cat": "<g/>"},
		Nose:       {"Button": "<circle/>"},
		OuterEyes:  {"Plain": "<g/>"},
		Eyes:       {"Round": "<g/>"},
		Mouth:      {"Smile": "<path/>"},
	})

	var got []string
	for _, g := range Gaps(traits, lib) {
		got = append(got, g.String())
	}
	want := []string{"nipples/Cat", "head/Cat", "headAccessory/Crown"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("Gaps() = %v, want %v", got, want)
	}
}

func TestValidateCompletenessListsGaps(t *testing.T) {
	lib := NewTemplateLibrary(map[string]map[string]string{
		Background: {"Blue": "<rect/>"},
	})
	err := ValidateCompleteness(loadTestTable(t), lib)
	if !errors.Is(err, errors.ErrCodeMissingTemplate) {
		t.Fatalf("error = %v, want MISSING_TEMPLATE", err)
	}
	for _, gap := range []string{"background/Red", "background/Green", "body/Dog", "mouth/Frown"} {
		if !strings.Contains(err.Error(), gap) {
			t.Errorf("error does not mention %s", gap)
		}
	}
	if strings.Contains(err.Error(), "/none") {
		t.Error("none accessory reported as a gap")
	}
}
