package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// the human always opens, the AI answers
const (
	Human = Player1
	AI    = Player2
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Opponent returns the other player, or Empty for Empty.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}
	return "empty"
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// Cell addresses one square of the grid.
type Cell struct {
	Row    int
	Column int
}

// Move is a piece that has landed on the board.
type Move struct {
	Row    int
	Column int
	Player PlayerID
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrIllegalMove  Error = "illegal move"
	ErrColumnFull   Error = "column is full"
	ErrNotYourTurn  Error = "not your turn"
	ErrGameOver     Error = "game is over"
	ErrInvalidBoard Error = "invalid board"
)
