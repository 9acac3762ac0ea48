// Package tui is the terminal front end for playing Notty against the
// computer.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/notty/internal/deck"
	"github.com/lox/notty/internal/game"
	"github.com/lox/notty/internal/session"
)

// DefaultTickInterval is how often the model polls the session
const DefaultTickInterval = 100 * time.Millisecond

// tickMsg drives computer turns
type tickMsg time.Time

// Model is the Bubble Tea model for one human seat
type Model struct {
	session *session.Session
	human   game.PlayerID
	names   map[game.PlayerID]string
	logger  *log.Logger

	// UI components
	logViewport viewport.Model
	actionInput textinput.Model
	help        help.Model
	keys        keyMap

	// State
	gameLog      []string
	status       string
	focusedPane  int // 0 = log, 1 = input
	quitting     bool
	tickInterval time.Duration

	// Dimensions
	width       int
	height      int
	initialized bool
}

// NewModel creates a model for the table described by cfg. The first human
// seat is the one played from the keyboard. Pass the model to
// session.Options.Subscribers so it sees every event, then Attach the
// session.
func NewModel(cfg game.Config, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "draw, commit, return, snatch <seat>, skip, accept, decline"
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	m := &Model{
		names:        make(map[game.PlayerID]string),
		logger:       logger.WithPrefix("tui"),
		logViewport:  vp,
		actionInput:  ti,
		help:         help.New(),
		keys:         defaultKeyMap(),
		focusedPane:  1,
		tickInterval: DefaultTickInterval,
	}
	for i, pc := range cfg.Players {
		id := game.PlayerID(i + 1)
		m.names[id] = pc.Name
		if pc.Controller == game.Human && m.human == game.NoPlayer {
			m.human = id
		}
	}
	return m
}

// Attach connects the model to the session it displays
func (m *Model) Attach(s *session.Session) {
	m.session = s
}

// SetTickInterval changes how often computer turns are polled
func (m *Model) SetTickInterval(d time.Duration) {
	m.tickInterval = d
}

// Init starts the cursor blink and the tick loop
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tick())
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		if m.session != nil {
			if _, err := m.session.Tick(); err != nil {
				m.logger.Error("Computer turn failed", "error", err)
				m.status = err.Error()
			}
		}
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case key.Matches(msg, m.keys.Focus):
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.actionInput.Focus()
			} else {
				m.focusedPane = 0
				m.actionInput.Blur()
			}
		case key.Matches(msg, m.keys.Submit):
			if m.focusedPane == 1 {
				input := strings.TrimSpace(m.actionInput.Value())
				m.actionInput.SetValue("")
				if cmd := m.processInput(input); cmd != nil {
					return m, cmd
				}
			}
		case m.focusedPane == 0 && key.Matches(msg, m.keys.Up):
			m.logViewport.ScrollUp(1)
		case m.focusedPane == 0 && key.Matches(msg, m.keys.Down):
			m.logViewport.ScrollDown(1)
		case m.focusedPane == 0 && key.Matches(msg, m.keys.PageUp):
			m.logViewport.HalfPageUp()
		case m.focusedPane == 0 && key.Matches(msg, m.keys.PageDown):
			m.logViewport.HalfPageDown()
		case m.focusedPane == 0 && key.Matches(msg, m.keys.Top):
			m.logViewport.GotoTop()
		case m.focusedPane == 0 && key.Matches(msg, m.keys.Bottom):
			m.logViewport.GotoBottom()
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.actionInput, cmd = m.actionInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// processInput runs one typed command
func (m *Model) processInput(input string) tea.Cmd {
	if m.session == nil {
		return nil
	}

	c, err := parseCommand(input, m.session.View(m.human))
	if err != nil {
		m.status = err.Error()
		return nil
	}

	switch {
	case c.quit:
		m.logger.Info("Quit command received")
		m.quitting = true
		return tea.Sequence(tea.ClearScreen, tea.Quit)
	case c.help:
		m.status = ""
		for _, line := range helpLines {
			m.AddLogEntry(line)
		}
		return nil
	}

	if err := m.session.Submit(c.action); err != nil {
		m.status = describeError(err)
		return nil
	}
	m.status = ""
	return nil
}

func describeError(err error) string {
	switch {
	case errors.Is(err, session.ErrNotYourTurn):
		return "Not your turn"
	case errors.Is(err, session.ErrFinished):
		return "The game is over - type quit to exit"
	case errors.Is(err, game.ErrEmptyDeck):
		return "The deck is empty"
	case errors.Is(err, game.ErrHandFull):
		return "Your hand is full"
	case errors.Is(err, game.ErrNoCardsToSnatch):
		return "That player has no cards"
	}
	return err.Error()
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 || m.session == nil {
		return "Loading..."
	}

	// Action pane (bottom, full width)
	actionContent := m.renderActionPane()
	actionHeight := lipgloss.Height(actionContent)
	actionStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#04B575")).
		Width(max(1, m.width-2)).
		Height(max(1, actionHeight))
	actionPane := actionStyle.Render(actionContent)

	// Sidebar pane (right of the log, same height)
	sidebarContent := m.renderSidebarPane()
	sidebarWidth := max(25, lipgloss.Width(sidebarContent))
	paneHeight := max(1, m.height-actionHeight-4)

	sidebarPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(sidebarWidth).
		Height(paneHeight).
		Render(sidebarContent)

	// Log pane (top left)
	logWidth := max(1, m.width-sidebarWidth-4)
	m.logViewport.Width = logWidth
	m.logViewport.Height = paneHeight
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if !m.initialized && logWidth > 1 && paneHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(logWidth).
		Height(paneHeight)
	if m.focusedPane == 0 {
		logStyle = logStyle.BorderForeground(lipgloss.Color("#04B575"))
	}
	logPane := logStyle.Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, logPane, sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Top, topRow, actionPane)
}

// renderSidebarPane lists the table
func (m *Model) renderSidebarPane() string {
	state := m.session.State()
	var content strings.Builder

	content.WriteString(HeaderStyle.Render(" NOTTY "))
	content.WriteString("\n\n")
	content.WriteString(WarningStyle.Render(fmt.Sprintf("Deck: %d", state.DeckSize())))
	content.WriteString(" | ")
	content.WriteString(WarningStyle.Render(fmt.Sprintf("Turn: %d", state.TurnNumber())))
	content.WriteString("\n\n")

	content.WriteString(InfoStyle.Render("Players:"))
	content.WriteString("\n")
	current := state.Current().ID
	for _, p := range state.Players() {
		line := fmt.Sprintf("  %d. %s: %d cards", p.ID, p.Name, p.HandSize())
		if p.ID == current && !m.session.Done() {
			content.WriteString(CurrentPlayerStyle.Render(line + " ◀"))
		} else {
			content.WriteString(PlayerInfoStyle.Render(line))
		}
		content.WriteString("\n")
	}

	if _, waiting := m.session.Waiting(); waiting {
		content.WriteString("\n")
		content.WriteString(InfoStyle.Render(m.name(current) + " is thinking..."))
	}
	return content.String()
}

// renderActionPane shows the human's hand, groups and the input line
func (m *Model) renderActionPane() string {
	v := m.session.View(m.human)
	var content strings.Builder

	content.WriteString(HandInfoStyle.Render("Hand: "))
	content.WriteString(formatCards(v.Hand))
	if len(v.Staged) > 0 {
		content.WriteString(HandInfoStyle.Render("  Drawn: "))
		content.WriteString(formatCards(v.Staged))
	}
	content.WriteString("\n")

	if g := v.Groups.Valid; g != nil {
		content.WriteString(SuccessStyle.Render(fmt.Sprintf("Group: %s %s", g.Kind, formatCards(g.Cards))))
		if l := v.Groups.Largest; l != nil && !l.Equal(*g) {
			content.WriteString(InfoStyle.Render("  Largest: "))
			content.WriteString(formatCards(l.Cards))
		}
		content.WriteString("\n")
	}

	switch {
	case m.session.Done():
		content.WriteString(WarningStyle.Render(m.outcome()))
	case len(v.Legal) > 0:
		content.WriteString(renderAvailableActions(v))
	default:
		content.WriteString(HandInfoStyle.Render("Waiting..."))
	}
	content.WriteString("\n")

	if m.status != "" {
		content.WriteString(ErrorStyle.Render(m.status))
		content.WriteString("\n")
	}

	content.WriteString(m.actionInput.View())
	content.WriteString("\n")

	if m.focusedPane == 0 {
		content.WriteString(m.help.View(logHelp(m.keys)))
	} else {
		content.WriteString(m.help.View(inputHelp(m.keys)))
	}
	return content.String()
}

// renderAvailableActions lists the legal actions
func renderAvailableActions(v game.View) string {
	var actions []string
	for _, kind := range v.Legal {
		switch kind {
		case game.Draw:
			actions = append(actions, SuccessStyle.Render("[draw]"))
		case game.CommitDraw:
			actions = append(actions, SuccessStyle.Render("[commit]"))
		case game.ReturnCard:
			actions = append(actions, WarningStyle.Render("[return]"))
		case game.Snatch:
			seats := make([]string, len(v.SnatchTargets))
			for i, id := range v.SnatchTargets {
				seats[i] = fmt.Sprint(int(id))
			}
			actions = append(actions, WarningStyle.Render("[snatch "+strings.Join(seats, "|")+"]"))
		case game.Skip:
			actions = append(actions, ErrorStyle.Render("[skip]"))
		case game.AcceptDiscard:
			actions = append(actions, SuccessStyle.Render(fmt.Sprintf("[accept %s]", v.Pending)))
		case game.DeclineDiscard:
			actions = append(actions, ErrorStyle.Render("[decline]"))
		}
	}
	return ActionsStyle.Render("Actions: " + strings.Join(actions, " "))
}

// formatCards colours each card
func formatCards(cards []deck.Card) string {
	formatted := make([]string, len(cards))
	for i, card := range cards {
		formatted[i] = cardStyles[card.Colour].Render(card.String())
	}
	return "[" + strings.Join(formatted, " ") + "]"
}

// AddLogEntry adds an entry to the game log and scrolls to it
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// Log returns a copy of the game log
func (m *Model) Log() []string {
	return append([]string(nil), m.gameLog...)
}

func (m *Model) name(id game.PlayerID) string {
	if name, ok := m.names[id]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("Player %d", id)
}

func (m *Model) outcome() string {
	if m.session.Stalemate() {
		return "Stalemate - nobody emptied their hand"
	}
	winner, _ := m.session.State().Winner()
	if winner == m.human {
		return "You win!"
	}
	return m.name(winner) + " wins"
}
