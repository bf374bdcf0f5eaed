// Package ui implements the SubBoard console as a Bubble Tea model.
//
// All application state lives on App and is mutated only inside
// Update, one message at a time. Network calls run as commands off the
// dispatch goroutine and come back as completion messages, so the
// store, selection, and in-flight bookkeeping never race.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/subitlab-buf/subboard-mng-gui/internal/backend"
	"github.com/subitlab-buf/subboard-mng-gui/internal/store"
	"github.com/subitlab-buf/subboard-mng-gui/internal/ui/theme"
)

const (
	// defaultPollInterval is the delay between periodic refreshes.
	defaultPollInterval = 45 * time.Second
	// pollBackoffInterval is the shorter re-check delay used when a
	// wake finds another operation already in flight.
	pollBackoffInterval = 30 * time.Second

	flashDuration = 2 * time.Second

	minViewportWidth  = 20
	minViewportHeight = 5
	minListWidth      = 24
)

// Config configures the UI application.
type Config struct {
	Client       backend.Client
	PollInterval time.Duration
	Theme        string
	Version      string
}

// paperRef is an optional paper id.
type paperRef struct {
	id int
	ok bool
}

// selectionState is the selected paper plus the neighbor ids captured
// when the selection was made. Navigation walks these captured ids
// instead of re-deriving the full order on every keystroke.
type selectionState struct {
	current paperRef
	before  paperRef
	after   paperRef
}

// App implements the Bubble Tea model for the SubBoard console.
type App struct {
	papers  *store.Store
	client  backend.Client
	flights *inflight

	selection selectionState

	pollInterval time.Duration

	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	keys     keyMap

	width  int
	height int
	ready  bool

	darkBackground bool

	lastRefreshNote string
	lastRefreshAt   time.Time
	flash           string
	flashStart      time.Time

	version string

	// armPoll schedules the next poll wake; a function field so tests
	// can observe the chosen delay instead of sleeping through it.
	armPoll func(time.Duration) tea.Cmd
}

// NewApp creates the console model from configuration.
func NewApp(cfg Config) *App {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.Theme != "" {
		theme.SetTheme(cfg.Theme)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Current().Info())

	return &App{
		papers:         store.New(),
		client:         cfg.Client,
		flights:        newInflight(),
		pollInterval:   cfg.PollInterval,
		spinner:        sp,
		help:           help.New(),
		keys:           defaultKeyMap(),
		darkBackground: lipgloss.HasDarkBackground(),
		version:        cfg.Version,
		armPoll:        schedulePoll,
	}
}

// Init arms the refresh loop with zero delay, so the first fetch
// happens as soon as the program starts.
func (m *App) Init() tea.Cmd {
	return m.armPoll(0)
}

// Selected returns the currently selected paper id, if any.
func (m *App) Selected() (int, bool) {
	return m.selection.current.id, m.selection.current.ok
}
