package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dinoterm/internal/config"
	"github.com/vovakirdan/dinoterm/internal/game"
	"github.com/vovakirdan/dinoterm/internal/sprite"
	"github.com/vovakirdan/dinoterm/internal/storage"
)

// Options configures a game session.
type Options struct {
	FPS  int
	Seed int64 // 0 means derive from the current time
	Cols int   // Initial terminal size; updated on resize
	Rows int
}

// chromeRows is the vertical space the chrome takes around the game frame:
// one header line, one prompt line, and the border rows.
const chromeRows = 4

// chromeCols is the horizontal space taken by the border columns.
const chromeCols = 2

// assetsLoadedMsg carries the result of the asynchronous sprite load.
// Loading is the only asynchronous boundary: the game stays in LOADING
// until every sheet has resolved.
type assetsLoadedMsg struct {
	set  *sprite.Set
	errs []error
}

// Model is the Bubble Tea model driving one game session.
type Model struct {
	game       *game.Game
	store      *storage.Store
	logger     *log.Logger
	fps        int
	width      int
	height     int
	scoreSaved bool
	quitting   bool
}

// NewModel creates the session model. The store may be nil; scores are then
// kept in memory only.
func NewModel(cfg config.Config, store *storage.Store, logger *log.Logger, opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	g := game.New(cfg, opts.Seed, logger)
	g.SetViewport(gameCols(opts.Cols), gameRows(opts.Rows))

	return Model{
		game:   g,
		store:  store,
		logger: logger,
		fps:    opts.FPS,
		width:  opts.Cols,
		height: opts.Rows,
	}
}

// gameCols returns the character columns available to the game frame.
func gameCols(termCols int) int {
	return max(termCols-chromeCols, 0)
}

// gameRows returns the character rows available to the game frame.
func gameRows(termRows int) int {
	return max(termRows-chromeRows, 0)
}

// Init starts the asset load and the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadAssetsCmd(m.logger), tickCmd(m.fps))
}

// loadAssetsCmd decodes the sprite sheets off the event loop and reports
// back with a single completion message.
func loadAssetsCmd(logger *log.Logger) tea.Cmd {
	return func() tea.Msg {
		set, errs := sprite.Load(logger)
		return assetsLoadedMsg{set: set, errs: errs}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case assetsLoadedMsg:
		m.game.FinishLoad(msg.set, msg.errs)
		return m, nil

	case tea.KeyMsg:
		m.game.HandleKey(MapKey(msg))
		if m.game.Closed() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.game.SetViewport(gameCols(msg.Width), gameRows(msg.Height))
		return m, nil

	case TickMsg:
		m.game.Tick()
		m.persistScore()
		return m, tickCmd(m.fps)
	}

	return m, nil
}

// persistScore saves the run score once per game over.
func (m *Model) persistScore() {
	if m.game.State() != game.StateGameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved || m.game.Score() <= 0 {
		return
	}
	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.Score())
	}
	m.scoreSaved = true
}

// View renders the frame with its chrome.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderSession(m.game, m.width)
}

// Run starts the Bubble Tea program for a local session.
func Run(cfg config.Config, store *storage.Store, logger *log.Logger, opts Options) error {
	model := NewModel(cfg, store, logger, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
