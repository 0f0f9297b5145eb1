package domain

import (
	"errors"
	"testing"
)

func TestMakeMoveAlternatesTurns(t *testing.T) {
	g := NewGame()

	if _, err := g.MakeMove(Player2, 0); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}

	row, err := g.MakeMove(Player1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row != Rows-1 {
		t.Fatalf("expected bottom row, got %d", row)
	}
	if g.CurrentPlayer != Player2 {
		t.Fatalf("expected player2 to move, got %v", g.CurrentPlayer)
	}
	if g.MoveCount != 1 || g.LastMove == nil || g.LastMove.Column != 3 {
		t.Fatalf("unexpected bookkeeping: count=%d last=%v", g.MoveCount, g.LastMove)
	}
}

func TestMakeMoveDetectsWin(t *testing.T) {
	g := NewGame()
	g.Board = MustParseBoard(`
		.......
		.......
		.......
		.......
		OOO....
		XXX....`)

	if _, err := g.MakeMove(Player1, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Status != StatusWon || g.Winner != Player1 {
		t.Fatalf("expected player1 win, got status=%s winner=%v", g.Status, g.Winner)
	}
	if !g.IsFinished() {
		t.Fatalf("expected finished game")
	}

	before := g.Board
	if _, err := g.MakeMove(g.CurrentPlayer, 4); !errors.Is(err, ErrGameOver) || !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("expected ErrGameOver wrapped in ErrIllegalMove, got %v", err)
	}
	if g.Board != before {
		t.Fatalf("board changed after game over")
	}
}

func TestMakeMoveRejectsFullColumn(t *testing.T) {
	g := NewGame()
	g.Board = MustParseBoard(`
		X......
		O......
		X......
		O......
		X......
		O......`)

	before := g.Board
	if _, err := g.MakeMove(Player1, 0); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove, got %v", err)
	}
	if g.Board != before || g.MoveCount != 0 {
		t.Fatalf("rejected move must not change state")
	}
}
