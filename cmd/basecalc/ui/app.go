package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"basecalc/internal/frontend"
)

// Page identifies one of the top-level views.
type Page int

const (
	PageCalculator Page = iota
	PageNumber
	PageText
	PageFloat
	PageBits
	PageHelp
	pageCount
)

func (p Page) String() string {
	switch p {
	case PageCalculator:
		return "Calculator"
	case PageNumber:
		return "Number"
	case PageText:
		return "Text"
	case PageFloat:
		return "Float"
	case PageBits:
		return "Bits"
	case PageHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// pollInterval is how often the UI drains backend responses.
const pollInterval = 50 * time.Millisecond

// tickMsg drives response polling.
type tickMsg time.Time

func pollTick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// AppModel is the root bubbletea model. It owns the shared frontend
// state and routes input to the active page.
type AppModel struct {
	state  *frontend.State
	logger *zap.Logger
	styles Styles

	page   Page
	width  int
	height int

	calculator CalculatorPageModel
	number     NumberPageModel
	text       TextPageModel
	float      FloatPageModel
	bits       BitsPageModel
	help       HelpPageModel
}

// NewAppModel builds the root model around an already-wired frontend state.
func NewAppModel(state *frontend.State, logger *zap.Logger) AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	styles := DefaultStyles()
	return AppModel{
		state:      state,
		logger:     logger,
		styles:     styles,
		page:       PageCalculator,
		calculator: NewCalculatorPageModel(state, styles),
		number:     NewNumberPageModel(state, styles),
		text:       NewTextPageModel(state, styles),
		float:      NewFloatPageModel(state, styles),
		bits:       NewBitsPageModel(state, styles),
		help:       NewHelpPageModel(styles),
	}
}

// Init starts the response polling loop.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(pollTick(), m.calculator.Init())
}

// Update handles global keys, forwards everything else to the active page.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.calculator.SetSize(msg.Width, msg.Height)
		m.help.SetSize(msg.Width, msg.Height)
		return m, nil

	case tickMsg:
		m.state.PollResponses()
		m.bits = m.bits.SyncFromState()
		return m, pollTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.page = (m.page + 1) % pageCount
			return m, nil
		case "shift+tab":
			m.page = (m.page + pageCount - 1) % pageCount
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.page {
	case PageCalculator:
		m.calculator, cmd = m.calculator.Update(msg)
	case PageNumber:
		m.number, cmd = m.number.Update(msg)
	case PageText:
		m.text, cmd = m.text.Update(msg)
	case PageFloat:
		m.float, cmd = m.float.Update(msg)
	case PageBits:
		m.bits, cmd = m.bits.Update(msg)
	case PageHelp:
		m.help, cmd = m.help.Update(msg)
	}
	return m, cmd
}

// View renders the tab bar and the active page.
func (m AppModel) View() string {
	var b strings.Builder
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	switch m.page {
	case PageCalculator:
		b.WriteString(m.calculator.View())
	case PageNumber:
		b.WriteString(m.number.View())
	case PageText:
		b.WriteString(m.text.View())
	case PageFloat:
		b.WriteString(m.float.View())
	case PageBits:
		b.WriteString(m.bits.View())
	case PageHelp:
		b.WriteString(m.help.View())
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("tab: switch page • ctrl+c: quit"))
	return b.String()
}

func (m AppModel) tabBar() string {
	tabs := make([]string, 0, int(pageCount))
	for p := Page(0); p < pageCount; p++ {
		label := p.String()
		if p == m.page {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.TabIdle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(tabs, m.styles.Muted.Render(" │ ")))
}
