package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexgladd/flappy-dragon/internal/config"
	"github.com/alexgladd/flappy-dragon/internal/core"
	"github.com/alexgladd/flappy-dragon/internal/game"
	"github.com/alexgladd/flappy-dragon/internal/storage"
)

// Model is the Bubble Tea model that drives the game loop. It measures
// elapsed wall-clock time per frame, samples the single most-recent key
// press, and hands both to the game as a Frame.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	runtime    core.RuntimeConfig
	keyMapper  *KeyMapper
	pendingKey core.Action
	lastTick   time.Time
	quitting   bool
	scoreSaved bool // Whether score has been saved for the current death
}

// NewModel creates a new Bubble Tea model for the given game.
// The screen buffer has the fixed world dimensions; terminal resizes do
// not reshape the world.
func NewModel(g *game.Game, store *storage.Store, cfg config.Config, rtc core.RuntimeConfig) Model {
	return Model{
		game:      g,
		screen:    core.NewScreen(cfg.World.ScreenWidth, cfg.World.ScreenHeight),
		store:     store,
		runtime:   rtc,
		keyMapper: NewKeyMapper(),
		lastTick:  time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the most recent key press for the next frame.
// Multiple presses within one frame are not queued; the latest wins.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, forceQuit := m.keyMapper.MapKey(msg)
	if forceQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.pendingKey = action
	}
	return m, nil
}

// handleTick runs one game frame with the measured elapsed time.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := time.Now()
	deltaMS := float64(now.Sub(m.lastTick).Microseconds()) / 1000.0
	if deltaMS < 0 {
		deltaMS = 0
	}
	m.lastTick = now

	frame := game.Frame{
		Screen:  m.screen,
		DeltaMS: deltaMS,
		Key:     m.pendingKey,
	}
	m.pendingKey = core.ActionNone

	m.game.Tick(&frame)

	// Save score once per death
	if m.game.Mode() == game.ModeEnd {
		if !m.scoreSaved {
			if m.store != nil && m.game.Score() > 0 {
				//nolint:errcheck // Best-effort save, game continues regardless
				m.store.SaveScore(m.game.Score())
			}
			m.scoreSaved = true
		}
	} else {
		m.scoreSaved = false
	}

	if frame.Quitting {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current screen buffer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(g *game.Game, store *storage.Store, cfg config.Config, rtc core.RuntimeConfig) error {
	model := NewModel(g, store, cfg, rtc)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
