package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/orbital/pkg/collection"
	"github.com/matzehuels/orbital/pkg/procedural"
)

func newBrowseModel(t *testing.T, supply uint64) BrowseModel {
	t.Helper()
	coll, err := collection.New(collection.Info{Name: "Test", Symbol: "test", Supply: supply}, procedural.New())
	if err != nil {
		t.Fatal(err)
	}
	return NewBrowseModel(coll, 0)
}

func press(m BrowseModel, keys ...tea.KeyMsg) BrowseModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(BrowseModel)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestBrowseNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want uint64
	}{
		{"right", []tea.KeyMsg{{Type: tea.KeyRight}}, 1},
		{"left clamps at zero", []tea.KeyMsg{{Type: tea.KeyLeft}}, 0},
		{"vim keys", []tea.KeyMsg{runes("l"), runes("l"), runes("h")}, 1},
		{"page down", []tea.KeyMsg{{Type: tea.KeyPgDown}}, 100},
		{"page down clamps", []tea.KeyMsg{{Type: tea.KeyPgDown}, {Type: tea.KeyPgDown}, {Type: tea.KeyPgDown}}, 249},
		{"end", []tea.KeyMsg{runes("G")}, 249},
		{"end then home", []tea.KeyMsg{runes("G"), runes("g")}, 0},
		{"jump", []tea.KeyMsg{runes(":"), runes("4"), runes("2"), {Type: tea.KeyEnter}}, 42},
		{"jump ignores letters", []tea.KeyMsg{runes(":"), runes("1x2"), {Type: tea.KeyEnter}}, 12},
		{"jump backspace", []tea.KeyMsg{runes(":"), runes("17"), {Type: tea.KeyBackspace}, {Type: tea.KeyEnter}}, 1},
		{"jump escape", []tea.KeyMsg{runes(":"), runes("9"), {Type: tea.KeyEsc}}, 0},
		{"jump clamps", []tea.KeyMsg{runes(":"), runes("99999"), {Type: tea.KeyEnter}}, 249},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(newBrowseModel(t, 250), tt.keys...)
			if m.Index != tt.want {
				t.Errorf("Index = %d, want %d", m.Index, tt.want)
			}
		})
	}
}

func TestBrowseView(t *testing.T) {
	m := press(newBrowseModel(t, 250), runes(":"), runes("3"), tea.KeyMsg{Type: tea.KeyEnter})
	view := m.View()
	for _, want := range []string{"Test", "#3", "/ 250", "art_style", "rarity_score", "blake3"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestBrowseQuit(t *testing.T) {
	m := newBrowseModel(t, 10)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
