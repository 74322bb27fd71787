// Package tui plays Eleven in a full-screen bubbletea interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/eleven/internal/game"
	"github.com/palemoky/eleven/internal/game/card"
	"github.com/palemoky/eleven/internal/ui/common"
	"github.com/palemoky/eleven/internal/ui/view"
)

const maxHistory = 8

// eventMsg forwards an engine event into the update loop.
type eventMsg struct {
	ev game.Event
}

// promptMsg asks the local player for one decision. reply is buffered.
type promptMsg struct {
	turn  game.Turn
	reply chan<- bool
}

// doneMsg reports the end of the game.
type doneMsg struct {
	result *game.Result
	err    error
}

// seat is what the table shows for one player.
type seat struct {
	name   string
	hand   card.Hand
	score  float64
	status game.Status
}

// Model is the bubbletea model for one game.
type Model struct {
	seats   []*seat
	round   int
	history []string
	counter *card.Counter

	prompt *promptMsg
	result *game.Result
	err    error

	keys      keyMap
	help      help.Model
	showRules bool
	quitting  bool

	// UI dimensions
	width  int
	height int
}

// NewModel returns a model with an empty table.
func NewModel() *Model {
	return &Model{
		counter: card.NewCounter(),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case eventMsg:
		m.apply(msg.ev)
	case promptMsg:
		m.prompt = &msg
	case doneMsg:
		m.result, m.err = msg.result, msg.err
		m.prompt = nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Rules):
		m.showRules = !m.showRules
	case key.Matches(msg, m.keys.Draw):
		m.answer(true)
	case key.Matches(msg, m.keys.Stand):
		m.answer(false)
	}
	return m, nil
}

func (m *Model) answer(wants bool) {
	if m.prompt == nil || m.showRules {
		return
	}
	m.prompt.reply <- wants
	m.prompt = nil
}

func (m *Model) apply(ev game.Event) {
	switch ev.Type {
	case game.EventGameStarted:
		m.seats = make([]*seat, len(ev.Players))
		for i, name := range ev.Players {
			m.seats[i] = &seat{name: name}
		}
		m.counter.Reset()
		m.log("The game has started")
	case game.EventRoundStarted:
		m.round = ev.Round
	case game.EventCardDrawn:
		m.counter.Deduct(ev.Card)
		if s := m.seat(ev.Player); s != nil {
			s.hand, s.score = ev.Hand, ev.Score
		}
		m.log(fmt.Sprintf("%s drew %s", ev.Player, ev.Card.Short()))
	case game.EventPlayerBusted:
		if s := m.seat(ev.Player); s != nil {
			s.status, s.score = game.StatusBusted, 0
		}
		m.log(fmt.Sprintf("%s %s busts with %s", common.BustIcon, ev.Player, common.FormatScore(ev.Hand.Total())))
	case game.EventPlayerStood:
		if s := m.seat(ev.Player); s != nil {
			s.status, s.score = game.StatusStood, ev.Score
		}
		m.log(fmt.Sprintf("%s %s stands on %s", common.StandIcon, ev.Player, common.FormatScore(ev.Score)))
	case game.EventGameEnded:
		m.log("The game has ended")
	}
}

func (m *Model) seat(name string) *seat {
	for _, s := range m.seats {
		if s.name == name {
			return s
		}
	}
	return nil
}

func (m *Model) log(line string) {
	m.history = append(m.history, line)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showRules {
		return view.RulesView(m.width, m.height)
	}

	var sb strings.Builder
	sb.WriteString(common.TitleStyle("♠ Eleven ♥"))
	if m.round > 0 {
		fmt.Fprintf(&sb, "  round %d", m.round)
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.renderTable())
	sb.WriteString("\n")

	if len(m.history) > 0 {
		sb.WriteString(common.GrayStyle.Render(strings.Join(m.history, "\n")))
		sb.WriteString("\n")
	}

	switch {
	case m.err != nil:
		sb.WriteString(common.ErrorStyle.Render("Error: " + m.err.Error()))
		sb.WriteString("\n")
	case m.result != nil:
		sb.WriteString(view.RenderLeaderboard(m.result))
		sb.WriteString("\n")
	case m.prompt != nil:
		q := fmt.Sprintf("%s %s, your score is %s. Do you want another card? (y/n)",
			common.TurnIcon, m.prompt.turn.Name, common.FormatScore(m.prompt.turn.Score))
		sb.WriteString(common.PromptStyle.Render(q))
		sb.WriteString("\n")
		chance := m.bustChance(m.prompt.turn.Score)
		fmt.Fprintf(&sb, "%s\n", common.GrayStyle.Render(fmt.Sprintf("%d cards left, %.0f%% chance to bust", m.prompt.turn.CardsLeft, chance*100)))
	}

	sb.WriteString("\n" + m.help.View(m.keys))
	return common.DocStyle.Render(sb.String())
}

func (m *Model) renderTable() string {
	if len(m.seats) == 0 {
		return common.BoxStyle.Render("Dealing...")
	}
	rows := make([]string, len(m.seats))
	for i, s := range m.seats {
		marker := view.StatusIcon(s.status)
		if m.prompt != nil && m.prompt.turn.Name == s.name {
			marker = common.TurnIcon
		}
		name := lipgloss.NewStyle().Width(12).Render(common.TruncateName(s.name, 12))
		rows[i] = fmt.Sprintf("%s %s %5s  %s", marker, name, common.FormatScore(s.score), view.RenderHand(s.hand))
	}
	return common.BoxStyle.Render(strings.Join(rows, "\n"))
}

// scoreOf is what the table currently shows for name.
func (m *Model) scoreOf(name string) float64 {
	if s := m.seat(name); s != nil {
		return s.score
	}
	return 0
}

// bustChance is the chance the next card takes score over the threshold.
func (m *Model) bustChance(score float64) float64 {
	return m.counter.BustChance(score, game.BustThreshold)
}
