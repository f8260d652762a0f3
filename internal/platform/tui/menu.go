package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brick3d/internal/games/breakout"
	"github.com/vovakirdan/brick3d/internal/storage"
)

// Selection is what the menu hands back.
type Selection struct {
	Mode       breakout.GameMode
	Level      int // 0 keeps the configured start level
	Scoreboard bool
}

type menuEntry int

const (
	entryCampaign menuEntry = iota
	entryEndless
	entrySelectLevel
	entryScores
	entryCount
)

func (e menuEntry) label() string {
	switch e {
	case entryCampaign:
		return "Campaign"
	case entryEndless:
		return "Endless"
	case entrySelectLevel:
		return "Select level"
	case entryScores:
		return "High scores"
	}
	return ""
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

// MenuModel picks a mode, optionally a starting level, or the scoreboard.
type MenuModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	best          int
	keyMapper     *KeyMapper
	selection     *Selection
	quitting      bool
}

// NewMenuModel creates the menu. store is only read for the best score
// shown under the title and may be nil.
func NewMenuModel(store *storage.Store, width, height int) MenuModel {
	m := MenuModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	if store != nil {
		if best, err := store.HighScore(breakout.IDCampaign); err == nil {
			m.best = best
		}
	}
	return m
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelKey(action)
		}
		return m.handleModeKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleModeKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < int(entryCount)-1 {
			m.cursor++
		}
	case MenuActionScoreboard:
		m.selection = &Selection{Scoreboard: true}
	case MenuActionSelect:
		switch menuEntry(m.cursor) {
		case entryCampaign:
			m.selection = &Selection{Mode: breakout.ModeCampaign}
		case entryEndless:
			m.selection = &Selection{Mode: breakout.ModeEndless}
		case entrySelectLevel:
			m.inLevelSelect = true
			m.levelCursor = 0
		case entryScores:
			m.selection = &Selection{Scoreboard: true}
		}
	}
	return m, nil
}

func (m MenuModel) handleLevelKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < breakout.LevelCount()-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.selection = &Selection{Mode: breakout.ModeCampaign, Level: m.levelCursor + 1}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("B R I C K 3 D"), m.width))
	b.WriteString("\n")
	if m.best > 0 {
		b.WriteString(centerText(menuHintStyle.Render(fmt.Sprintf("best %d", m.best)), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.inLevelSelect {
		m.writeLevels(&b)
	} else {
		for i := range int(entryCount) {
			line := "  " + menuEntry(i).label()
			if i == m.cursor {
				line = menuCurStyle.Render("> " + menuEntry(i).label())
			}
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// writeLevels shows a window of levels around the cursor so long lists fit
// small terminals.
func (m MenuModel) writeLevels(b *strings.Builder) {
	visible := max(m.height-10, 5)
	start := max(m.levelCursor-visible/2, 0)
	end := min(start+visible, breakout.LevelCount())
	start = max(end-visible, 0)

	for i := start; i < end; i++ {
		line := fmt.Sprintf("  %2d  %s", i+1, breakout.LayoutName(i+1))
		if i == m.levelCursor {
			line = menuCurStyle.Render(fmt.Sprintf("> %2d  %s", i+1, breakout.LayoutName(i+1)))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
}

// Selected returns the chosen entry, or nil while the user is browsing.
func (m MenuModel) Selected() *Selection {
	return m.selection
}

// IsQuitting reports whether the user left the menu.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads text to the centre of width, ignoring escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
