package domain

// Directions are the four scan vectors: horizontal, vertical,
// diagonal down-right and diagonal down-left.
var Directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// HasConnectFour scans every cell as a run start in all four directions.
func (b *Board) HasConnectFour(player PlayerID) bool {
	_, found := b.WinningLine(player)
	return found
}

// WinningLine returns the first run of four found, in scan order.
func (b *Board) WinningLine(player PlayerID) ([ToWin]Cell, bool) {
	var line [ToWin]Cell
	if player == Empty {
		return line, false
	}

	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b[row][col] != player {
				continue
			}
			for _, dir := range Directions {
				if b.CountDiskInDirection(row, col, dir[0], dir[1], player) < ToWin {
					continue
				}
				for k := range line {
					line[k] = Cell{Row: row + dir[0]*k, Column: col + dir[1]*k}
				}
				return line, true
			}
		}
	}

	return line, false
}

// CountDiskInDirection counts the run starting at (row, column) itself,
// capped at ToWin. It stops at the edge or at any other cell value.
func (b *Board) CountDiskInDirection(row, column, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row, column
	for count < ToWin && InBounds(r, c) && b[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
