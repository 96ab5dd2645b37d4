package tabular

import (
	"fmt"
	"strings"

	"github.com/matzehuels/orbital/pkg/errors"
)

// Gap is a trait name that has no fragment in some layer.
type Gap struct {
	Template string
	Trait    string
}

func (g Gap) String() string { return fmt.Sprintf("%s/%s", g.Template, g.Trait) }

// Gaps lists every (layer, trait) pair reachable from table that lib cannot
// draw, in layer order, then table order. Accessory None entries are exempt.
func Gaps(table TraitTable, lib *TemplateLibrary) []Gap {
	var gaps []Gap
	for _, l := range Layers {
		for _, name := range table.Names(l.Trait) {
			if l.Optional && name == None {
				continue
			}
			if !lib.Has(l.Template, name) {
				gaps = append(gaps, Gap{Template: l.Template, Trait: name})
			}
		}
	}
	return gaps
}

// ValidateCompleteness checks that every trait name in every index array
// has its fragment, reporting all gaps at once.
func ValidateCompleteness(table *PackedTable, lib *TemplateLibrary) error {
	gaps := Gaps(table.TraitTable(), lib)
	if len(gaps) == 0 {
		return nil
	}
	names := make([]string, len(gaps))
	for i, g := range gaps {
		names[i] = g.String()
	}
	return errors.New(errors.ErrCodeMissingTemplate, "%d missing templates: %s", len(gaps), strings.Join(names, ", "))
}
