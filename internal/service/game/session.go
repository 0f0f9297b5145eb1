package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/iamasit07/portfolio-connect4/internal/domain"
	"github.com/iamasit07/portfolio-connect4/internal/service/bot"
	"github.com/iamasit07/portfolio-connect4/pkg/uid"
	"github.com/rs/zerolog"
)

// ErrStaleGame rejects work scheduled for a game that has been reset.
const ErrStaleGame = domain.Error("game was reset")

type Outcome string

const (
	OutcomeNone     Outcome = ""
	OutcomeHumanWon Outcome = "human_won"
	OutcomeAIWon    Outcome = "ai_won"
	OutcomeDraw     Outcome = "draw"
)

// Session is one game of human against the AI. The human always plays
// domain.Human and moves first.
type Session struct {
	GameID     string
	Game       *domain.Game
	Outcome    Outcome
	CreatedAt  time.Time
	FinishedAt time.Time
	searcher   *bot.Searcher
	log        zerolog.Logger
	mu         sync.Mutex
}

// MoveResult describes a move that was applied.
type MoveResult struct {
	Row      int
	Column   int
	Player   domain.PlayerID
	Score    int // search score, AI moves only
	Terminal bool
	Outcome  Outcome
}

// State is a read-only copy of the session for rendering.
type State struct {
	GameID      string
	Board       domain.Board
	Turn        domain.PlayerID
	Terminal    bool
	Outcome     Outcome
	MoveCount   int
	LastMove    *domain.Move
	WinningLine []domain.Cell
}

// NewSession starts an empty game with the human to move. A nil searcher
// falls back to the default depth and weights.
func NewSession(searcher *bot.Searcher, logger zerolog.Logger) *Session {
	if searcher == nil {
		searcher = bot.NewSearcher(bot.DefaultDepth, bot.DefaultWeights, logger)
	}

	s := &Session{
		searcher: searcher,
		log:      logger,
	}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.GameID = uid.GenerateGameID()
	s.Game = domain.NewGame()
	s.Outcome = OutcomeNone
	s.CreatedAt = time.Now()
	s.FinishedAt = time.Time{}

	s.log.Info().Str("game_id", s.GameID).Msg("session created")
}

// Reset discards the current game and starts a fresh one in place.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
}

// ApplyHumanMove plays column for the human. Any rejection wraps
// domain.ErrIllegalMove and leaves the board as it was.
func (s *Session) ApplyHumanMove(column int) (MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.apply(domain.Human, column)
	if err != nil {
		s.log.Debug().Str("game_id", s.GameID).Int("column", column).Err(err).Msg("human move rejected")
		return MoveResult{}, err
	}
	return result, nil
}

// ApplyAIMove searches for the AI's column and plays it. It must only be
// called while the AI is to move.
func (s *Session) ApplyAIMove() (MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.applyAI()
}

// ApplyAIMoveFor is ApplyAIMove for a move scheduled earlier: it refuses to
// play if the session was reset to another game in the meantime.
func (s *Session) ApplyAIMoveFor(gameID string) (MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.GameID != gameID {
		return MoveResult{}, ErrStaleGame
	}
	return s.applyAI()
}

// Caller holds s.mu.
func (s *Session) applyAI() (MoveResult, error) {
	if s.Game.IsFinished() {
		return MoveResult{}, fmt.Errorf("%w: %w", domain.ErrIllegalMove, domain.ErrGameOver)
	}
	if s.Game.CurrentPlayer != domain.AI {
		return MoveResult{}, fmt.Errorf("%w: %w", domain.ErrIllegalMove, domain.ErrNotYourTurn)
	}

	started := time.Now()
	search := s.searcher.Search(s.Game.Board, domain.AI)

	result, err := s.apply(domain.AI, search.Column)
	if err != nil {
		// the search only returns legal columns
		return MoveResult{}, fmt.Errorf("apply searched column %d: %w", search.Column, err)
	}
	result.Score = search.Score

	s.log.Debug().
		Str("game_id", s.GameID).
		Int("column", search.Column).
		Int("score", search.Score).
		Int("nodes", search.Stats.Nodes).
		Dur("took", time.Since(started)).
		Msg("ai move")

	return result, nil
}

// apply plays the move and records the outcome: win first, then full board.
// Caller holds s.mu.
func (s *Session) apply(player domain.PlayerID, column int) (MoveResult, error) {
	row, err := s.Game.MakeMove(player, column)
	if err != nil {
		return MoveResult{}, err
	}

	result := MoveResult{Row: row, Column: column, Player: player}

	switch s.Game.Status {
	case domain.StatusWon:
		if s.Game.Winner == domain.Human {
			s.Outcome = OutcomeHumanWon
		} else {
			s.Outcome = OutcomeAIWon
		}
	case domain.StatusDraw:
		s.Outcome = OutcomeDraw
	}

	if s.Game.IsFinished() {
		s.FinishedAt = time.Now()
		result.Terminal = true
		result.Outcome = s.Outcome

		s.log.Info().
			Str("game_id", s.GameID).
			Str("outcome", string(s.Outcome)).
			Int("moves", s.Game.MoveCount).
			Dur("duration", s.FinishedAt.Sub(s.CreatedAt)).
			Msg("game over")
	}

	return result, nil
}

// Snapshot copies the current state so callers can read it without the lock.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := State{
		GameID:    s.GameID,
		Board:     s.Game.Board,
		Turn:      s.Game.CurrentPlayer,
		Terminal:  s.Game.IsFinished(),
		Outcome:   s.Outcome,
		MoveCount: s.Game.MoveCount,
	}
	if s.Game.LastMove != nil {
		last := *s.Game.LastMove
		state.LastMove = &last
	}
	if s.Game.Status == domain.StatusWon {
		if line, ok := s.Game.Board.WinningLine(s.Game.Winner); ok {
			state.WinningLine = line[:]
		}
	}
	return state
}
