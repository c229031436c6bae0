package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"tablesel/internal/config"
	"tablesel/internal/datatable"
	"tablesel/internal/domain"
	"tablesel/internal/ui/input"
	inputtypes "tablesel/internal/ui/input/types"
	"tablesel/internal/ui/state"
	"tablesel/internal/ui/views"
)

// chromeHeight is the number of screen lines not used by body rows: title,
// table header, two scroll indicators, status, help bar and padding
const chromeHeight = 10

// Model represents the UI state
type Model struct {
	table  *datatable.DataTable
	config *config.Config
	state  *state.AppState

	width  int
	height int
	help   help.Model
	paused bool // ov owns the terminal

	styles       *views.Styles
	renderer     *views.TableRenderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler
	pager        *PagerOps
	unlisten     []func()

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a UI model hosting table
func NewModel(cfg *config.Config, table *datatable.DataTable) *Model {
	styles := views.NewStyles()
	glyphs := views.Glyphs{
		Checked:       cfg.UISettings.CheckedGlyph,
		Unchecked:     cfg.UISettings.UncheckedGlyph,
		Indeterminate: cfg.UISettings.IndeterminateGlyph,
	}

	m := &Model{
		table:        table,
		config:       cfg,
		state:        state.NewAppState(),
		help:         help.New(),
		styles:       styles,
		renderer:     views.NewTableRenderer(styles, glyphs, cfg.Table.ShowRowIDs),
		helpRenderer: NewHelpRenderer(),
		inputHandler: input.New(),
		pager:        NewPagerOps(),
	}

	// Listeners run inside Update, where the clicks that trigger them happen
	m.unlisten = []func(){
		table.Listen(domain.EventRowSelectionChanged, m.onRowSelectionChanged),
		table.Listen(domain.EventSelectedAll, func(domain.DomainEvent) {
			m.state.StatusMessage = "Selected all rows"
		}),
		table.Listen(domain.EventUnselectedAll, func(domain.DomainEvent) {
			m.state.StatusMessage = "Cleared selection"
		}),
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Close stops listening to the table
func (m *Model) Close() {
	for _, fn := range m.unlisten {
		fn()
	}
	m.unlisten = nil
}

// State exposes the UI state
func (m *Model) State() *state.AppState {
	return m.state
}

func (m *Model) onRowSelectionChanged(e domain.DomainEvent) {
	ev, ok := e.(domain.RowSelectionChangedEvent)
	if !ok {
		return
	}
	verb := "Deselected"
	if ev.Detail.Selected {
		verb = "Selected"
	}
	m.state.StatusMessage = fmt.Sprintf("%s row %d (%s)", verb, ev.Detail.RowIndex+1, ev.Detail.RowID)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.state.SetViewportHeight(msg.Height - chromeHeight)

	case tea.KeyMsg:
		if m.paused {
			return m, nil
		}
		var cmds []tea.Cmd
		for _, action := range m.inputHandler.HandleKey(msg) {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case pauseRenderingMsg:
		m.paused = true

	case resumeRenderingMsg:
		m.paused = false

	case pagerMsg:
		if msg.err != nil {
			log.Error().Err(msg.err).Str("pager", msg.title).Msg("pager failed")
			m.state.StatusMessage = fmt.Sprintf("Error showing %s: %v", msg.title, msg.err)
		}
	}

	return m, nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.ToggleRowAction:
		rows := m.table.GetRows()
		if len(rows) == 0 {
			return nil
		}
		m.state.SetCursor(m.state.Cursor, len(rows))
		cb := rows[m.state.Cursor].Query(datatable.ClassRowCheckbox)
		if cb == nil {
			m.state.StatusMessage = "Rows are not selectable"
			return nil
		}
		cb.Click()

	case inputtypes.ToggleAllAction:
		header := m.table.Root().Query(datatable.ClassHeaderRowCheckbox)
		if header == nil {
			m.state.StatusMessage = "Rows are not selectable"
			return nil
		}
		header.Click()

	case inputtypes.RelayoutAction:
		m.table.Layout()
		m.state.SetCursor(m.state.Cursor, m.table.GetRowCount())
		m.state.StatusMessage = "Layout refreshed"

	case inputtypes.ShowSelectionAction:
		return m.showInPager("selection", m.helpRenderer.RenderSelection(m.table))

	case inputtypes.ToggleHelpAction:
		return m.showInPager("help", m.helpRenderer.RenderHelp(m.inputHandler.Keys()))

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

func (m *Model) navigate(direction string) {
	total := m.table.GetRowCount()
	page := m.state.ViewportHeight
	switch direction {
	case "up":
		m.state.MoveCursor(-1, total)
	case "down":
		m.state.MoveCursor(1, total)
	case "pageup":
		m.state.MoveCursor(-page, total)
	case "pagedown":
		m.state.MoveCursor(page, total)
	case "home":
		m.state.SetCursor(0, total)
	case "end":
		m.state.SetCursor(total-1, total)
	}
}

// showInPager returns a command that shows content using ov pager
func (m *Model) showInPager(title, content string) tea.Cmd {
	if m.program == nil {
		return func() tea.Msg {
			return pagerMsg{title: title, err: ErrNoProgram}
		}
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.Show(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{title: title, err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.paused {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("tablesel"))
	b.WriteString("\n")

	b.WriteString(m.renderer.Render(views.TableView{
		Root:   m.table.Root(),
		Cursor: m.state.Cursor,
		Offset: m.state.ViewportOffset,
		Height: m.state.ViewportHeight,
	}))
	b.WriteString("\n")

	status := fmt.Sprintf("%d/%d selected", m.table.GetSelectedRowCount(), m.table.GetRowCount())
	if m.state.StatusMessage != "" {
		status += " • " + m.state.StatusMessage
	}
	b.WriteString(m.styles.Status.Render(status))

	if m.config.UISettings.ShowHelpBar {
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render(m.help.View(m.inputHandler.Keys())))
	}

	return m.styles.Main.Render(b.String())
}
