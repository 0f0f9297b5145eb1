package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iamasit07/portfolio-connect4/internal/domain"
	"github.com/iamasit07/portfolio-connect4/internal/service/game"
	"github.com/rs/zerolog"
)

const (
	statusYourTurn = "Your turn (X)"
	statusThinking = "AI is thinking..."
	statusYouWin   = "You win!"
	statusAIWins   = "AI wins!"
	statusDraw     = "Draw!"
)

// aiTurnMsg fires once the presentation delay before the AI move is over.
type aiTurnMsg struct {
	gameID string
}

type aiMovedMsg struct {
	gameID string
	result game.MoveResult
	err    error
}

// Model drives a game.Session from the keyboard. The AI search runs inside a
// tea.Cmd so the input loop never blocks on it.
type Model struct {
	session  *game.Session
	state    game.State
	cursor   int
	status   string
	thinking bool
	aiDelay  time.Duration
	log      zerolog.Logger
}

func New(session *game.Session, aiDelay time.Duration, logger zerolog.Logger) Model {
	return Model{
		session: session,
		state:   session.Snapshot(),
		cursor:  domain.Columns / 2,
		status:  statusYourTurn,
		aiDelay: aiDelay,
		log:     logger,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case aiTurnMsg:
		if msg.gameID != m.state.GameID {
			return m, nil
		}
		return m, runAI(m.session, msg.gameID)

	case aiMovedMsg:
		// a reset while the AI was thinking makes the result stale
		if msg.gameID != m.state.GameID {
			return m, nil
		}
		m.thinking = false
		if msg.err != nil {
			m.log.Error().Err(msg.err).Str("game_id", msg.gameID).Msg("ai move failed")
			m.status = fmt.Sprintf("AI error: %v (press r to restart)", msg.err)
			return m, nil
		}
		m.state = m.session.Snapshot()
		m.status = statusFor(m.state)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "r":
		m.session.Reset()
		m.state = m.session.Snapshot()
		m.thinking = false
		m.status = statusYourTurn
		return m, nil

	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "right", "l":
		if m.cursor < domain.Columns-1 {
			m.cursor++
		}
		return m, nil

	case "enter", " ":
		return m.drop()

	case "1", "2", "3", "4", "5", "6", "7":
		m.cursor = int(key[0] - '1')
		return m.drop()
	}

	return m, nil
}

func (m Model) drop() (tea.Model, tea.Cmd) {
	if m.thinking || m.state.Terminal || m.state.Turn != domain.Human {
		return m, nil
	}

	if _, err := m.session.ApplyHumanMove(m.cursor); err != nil {
		switch {
		case errors.Is(err, domain.ErrIllegalMove):
			m.status = fmt.Sprintf("Column %d is full, pick another", m.cursor+1)
		default:
			m.status = err.Error()
		}
		return m, nil
	}

	m.state = m.session.Snapshot()
	if m.state.Terminal {
		m.status = statusFor(m.state)
		return m, nil
	}

	m.thinking = true
	m.status = statusThinking
	return m, scheduleAI(m.aiDelay, m.state.GameID)
}

func scheduleAI(delay time.Duration, gameID string) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return aiTurnMsg{gameID: gameID} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return aiTurnMsg{gameID: gameID}
	})
}

func runAI(session *game.Session, gameID string) tea.Cmd {
	return func() tea.Msg {
		result, err := session.ApplyAIMoveFor(gameID)
		return aiMovedMsg{gameID: gameID, result: result, err: err}
	}
}

func statusFor(state game.State) string {
	switch state.Outcome {
	case game.OutcomeHumanWon:
		return statusYouWin
	case game.OutcomeAIWon:
		return statusAIWins
	case game.OutcomeDraw:
		return statusDraw
	}
	if state.Turn == domain.AI {
		return statusThinking
	}
	return statusYourTurn
}
