package bot

import (
	"testing"

	"github.com/iamasit07/portfolio-connect4/internal/domain"
)

func TestWindowCount(t *testing.T) {
	// 24 horizontal, 21 vertical, 12 per diagonal
	if len(windows) != 69 {
		t.Fatalf("expected 69 windows, got %d", len(windows))
	}
}

func TestEvaluateScores(t *testing.T) {
	cases := []struct {
		name      string
		board     string
		wantAI    int
		wantHuman int
	}{
		{
			name: "empty",
			board: `
				.......
				.......
				.......
				.......
				.......
				.......`,
			wantAI:    0,
			wantHuman: 0,
		},
		{
			name: "open three",
			board: `
				.......
				.......
				.......
				.......
				.......
				OOO....`,
			wantAI:    10 + 2,
			wantHuman: -50,
		},
		{
			name: "four",
			board: `
				.......
				.......
				.......
				.......
				.......
				OOOO...`,
			wantAI:    1000 + 10 + 2,
			wantHuman: -10000 - 50,
		},
		{
			name: "mixed window scores nothing",
			board: `
				.......
				.......
				.......
				.......
				.......
				XOOO...`,
			wantAI:    10 + 2,
			wantHuman: -50,
		},
	}

	for _, tc := range cases {
		board := domain.MustParseBoard(tc.board)
		if got := Evaluate(&board, domain.AI); got != tc.wantAI {
			t.Fatalf("%s: expected AI score %d, got %d", tc.name, tc.wantAI, got)
		}
		if got := Evaluate(&board, domain.Human); got != tc.wantHuman {
			t.Fatalf("%s: expected human score %d, got %d", tc.name, tc.wantHuman, got)
		}
	}
}

func TestEvaluateIsPure(t *testing.T) {
	board := domain.MustParseBoard(`
		.......
		.......
		...O...
		..XX...
		..OXO..
		.XOXO..`)
	before := board

	first := Evaluate(&board, domain.AI)
	second := Evaluate(&board, domain.AI)
	if first != second {
		t.Fatalf("expected identical scores, got %d and %d", first, second)
	}
	if board != before {
		t.Fatalf("evaluate mutated the board")
	}
}

func TestCustomWeights(t *testing.T) {
	board := domain.MustParseBoard(`
		.......
		.......
		.......
		.......
		.......
		OOO....`)

	w := DefaultWeights
	w.OpponentThree = -7
	if got := w.Evaluate(&board, domain.Human); got != -7 {
		t.Fatalf("expected -7, got %d", got)
	}
}
