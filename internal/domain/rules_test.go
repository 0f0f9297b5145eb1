package domain

import "testing"

func TestHasConnectFourDirections(t *testing.T) {
	cases := []struct {
		name   string
		board  string
		player PlayerID
		want   bool
	}{
		{
			name: "horizontal",
			board: `
				.......
				.......
				.......
				.......
				.......
				...XXXX`,
			player: Player1,
			want:   true,
		},
		{
			name: "vertical",
			board: `
				.......
				.......
				O......
				O......
				O......
				O......`,
			player: Player2,
			want:   true,
		},
		{
			name: "diagonal down-right",
			board: `
				.......
				.......
				X......
				OX.....
				OOX....
				OOOX...`,
			player: Player1,
			want:   true,
		},
		{
			name: "diagonal down-left",
			board: `
				.......
				.......
				......O
				.....OX
				....OXX
				...OXXX`,
			player: Player2,
			want:   true,
		},
		{
			name: "interrupted by opponent",
			board: `
				.......
				.......
				.......
				.......
				.......
				XXXOXXX`,
			player: Player1,
			want:   false,
		},
		{
			name: "three is not four",
			board: `
				.......
				.......
				.......
				X......
				X......
				X......`,
			player: Player1,
			want:   false,
		},
		{
			name: "other player",
			board: `
				.......
				.......
				.......
				.......
				.......
				XXXX...`,
			player: Player2,
			want:   false,
		},
		{
			name: "no wrap across rows",
			board: `
				.......
				.......
				.......
				.......
				X......
				X...XXX`,
			player: Player1,
			want:   false,
		},
	}

	for _, tc := range cases {
		board := MustParseBoard(tc.board)
		if got := board.HasConnectFour(tc.player); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestHasConnectFourIgnoresEmpty(t *testing.T) {
	board := NewBoard()
	if board.HasConnectFour(Empty) {
		t.Fatalf("empty cells must never count as a run")
	}
}

func TestFourDropsInOneColumn(t *testing.T) {
	board := NewBoard()
	for i := 1; i <= 4; i++ {
		if _, err := board.DropPiece(3, AI); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		won := board.HasConnectFour(AI)
		if i < 4 && won {
			t.Fatalf("expected no win after %d drops", i)
		}
		if i == 4 && !won {
			t.Fatalf("expected win after fourth drop")
		}
	}
}

func TestWinningLineCells(t *testing.T) {
	board := MustParseBoard(`
		.......
		.......
		......O
		.....OX
		....OXX
		...OXXX`)

	line, ok := board.WinningLine(Player2)
	if !ok {
		t.Fatalf("expected a winning line")
	}
	want := [ToWin]Cell{{2, 6}, {3, 5}, {4, 4}, {5, 3}}
	if line != want {
		t.Fatalf("expected %v, got %v", want, line)
	}
}
