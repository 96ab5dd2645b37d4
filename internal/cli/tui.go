package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/orbital/pkg/attrs"
	"github.com/matzehuels/orbital/pkg/cache"
	"github.com/matzehuels/orbital/pkg/collection"
)

// pageStep is how far pgup/pgdown move.
const pageStep = 100

var (
	browseIndexStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	browseErrorStyle = lipgloss.NewStyle().Foreground(colorRed)
	browseDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// BrowseModel - Interactive index browser
// =============================================================================

// BrowseModel is the bubbletea model that steps through a collection,
// showing the attribute set and image digest of the current index.
type BrowseModel struct {
	coll  *collection.Collection
	keys  browseKeyMap
	help  help.Model
	Index uint64

	set     attrs.Set
	size    int
	digest  string
	err     error
	jumping bool
	jump    string
}

// NewBrowseModel creates a browser positioned at start.
func NewBrowseModel(coll *collection.Collection, start uint64) BrowseModel {
	m := BrowseModel{coll: coll, keys: defaultBrowseKeys, help: help.New(), Index: start}
	m.load()
	return m
}

func (m *BrowseModel) load() {
	m.set, m.size, m.digest = attrs.Set{}, 0, ""
	set, err := m.coll.Attributes(m.Index)
	if err != nil {
		m.err = err
		return
	}
	svg, err := m.coll.Image(m.Index)
	if err != nil {
		m.err = err
		return
	}
	m.set, m.size, m.digest, m.err = set, len(svg), cache.Hash(svg), nil
}

// moveTo clamps target to the supply and loads it.
func (m *BrowseModel) moveTo(target int64) {
	last := int64(m.coll.Info().Supply) - 1
	target = max(0, min(target, last))
	if uint64(target) == m.Index {
		return
	}
	m.Index = uint64(target)
	m.load()
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if m.jumping {
			return m.updateJump(msg)
		}
		cur := int64(m.Index)
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.moveTo(cur + 1)
		case key.Matches(msg, m.keys.Prev):
			m.moveTo(cur - 1)
		case key.Matches(msg, m.keys.PageDown):
			m.moveTo(cur + pageStep)
		case key.Matches(msg, m.keys.PageUp):
			m.moveTo(cur - pageStep)
		case key.Matches(msg, m.keys.First):
			m.moveTo(0)
		case key.Matches(msg, m.keys.Last):
			m.moveTo(int64(m.coll.Info().Supply) - 1)
		case key.Matches(msg, m.keys.Jump):
			m.jumping, m.jump = true, ""
		}
	}
	return m, nil
}

func (m BrowseModel) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.jumping = false
	case tea.KeyEnter:
		m.jumping = false
		var target int64
		if _, err := fmt.Sscan(m.jump, &target); err == nil {
			m.moveTo(target)
		}
	case tea.KeyBackspace:
		if len(m.jump) > 0 {
			m.jump = m.jump[:len(m.jump)-1]
		}
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r >= '0' && r <= '9' && len(m.jump) < 20 {
				m.jump += string(r)
			}
		}
	}
	return m, nil
}

func (m BrowseModel) View() string {
	var b strings.Builder
	info := m.coll.Info()

	b.WriteString(StyleTitle.Render(info.Name))
	b.WriteString(" ")
	b.WriteString(browseIndexStyle.Render(fmt.Sprintf("#%d", m.Index)))
	b.WriteString(browseDimStyle.Render(fmt.Sprintf(" / %d", info.Supply)))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(browseErrorStyle.Render(FormatError(m.err)))
		b.WriteString("\n")
	} else {
		b.WriteString(renderTable([]string{"Trait", "Value"}, attributeRows(m.set)))
		b.WriteString("\n")
		b.WriteString(browseDimStyle.Render(fmt.Sprintf("  svg %d bytes · blake3 %s", m.size, shortDigest(m.digest))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.jumping {
		b.WriteString(browseIndexStyle.Render("jump to: "))
		b.WriteString(m.jump)
		b.WriteString("█")
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	b.WriteString("\n")
	return b.String()
}

func shortDigest(d string) string {
	if len(d) > 16 {
		return d[:16]
	}
	return d
}
