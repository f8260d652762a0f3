package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brick3d/internal/core"
	"github.com/vovakirdan/brick3d/internal/games/breakout"
	"github.com/vovakirdan/brick3d/internal/registry"
	"github.com/vovakirdan/brick3d/internal/storage"
)

type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenScores
)

// NewGame builds the game for a menu selection.
func NewGame(sel Selection) registry.Game {
	if sel.Mode == breakout.ModeEndless {
		return breakout.NewEndless(breakout.WithStartLevel(sel.Level))
	}
	return breakout.New(breakout.WithStartLevel(sel.Level))
}

// SessionModel drives menu -> game/scoreboard -> menu. It is the top-level
// model for both local play and SSH sessions.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	player   string
	current  screenKind
	menu     MenuModel
	game     GameModel
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session for player. store may be nil.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, player string) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		player: player,
		menu:   NewMenuModel(store, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen and handles transitions.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	var cmd tea.Cmd
	switch m.current {
	case screenGame:
		next, c := m.game.Update(msg)
		m.game = next.(GameModel)
		cmd = c
		if m.game.IsQuitting() {
			m.quitting = true
			return m, tea.Quit
		}
		if m.game.BackToMenu() {
			return m.openMenu()
		}

	case screenScores:
		next, c := m.scores.Update(msg)
		m.scores = next.(ScoreboardModel)
		cmd = c
		if m.scores.IsQuitting() {
			m.quitting = true
			return m, tea.Quit
		}
		if m.scores.IsGoingBack() {
			return m.openMenu()
		}

	default:
		next, c := m.menu.Update(msg)
		m.menu = next.(MenuModel)
		cmd = c
		if m.menu.IsQuitting() {
			m.quitting = true
			return m, tea.Quit
		}
		if sel := m.menu.Selected(); sel != nil {
			if sel.Scoreboard {
				m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
				m.current = screenScores
				return m, m.scores.Init()
			}
			m.game = NewGameModel(NewGame(*sel), m.store, m.config, m.player)
			m.current = screenGame
			return m, m.game.Init()
		}
	}
	return m, cmd
}

func (m SessionModel) openMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.store, m.config.ScreenW, m.config.ScreenH)
	m.current = screenMenu
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.current {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Run starts a local session in the alternate screen.
func Run(store *storage.Store, cfg core.RuntimeConfig, player string) error {
	p := tea.NewProgram(NewSessionModel(store, cfg, player), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
