package entity

const (
	MarkX = "X"
	MarkO = "O"

	// MarkTie is recorded as the winner of a drawn game.
	MarkTie = "-"

	EmptyCell = ""
)

// WinCombos lists the eight winning triples of a 3x3 board: three rows,
// three columns and the two diagonals, row-major cell indices 0-8.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board holds the nine cells of a game, each EmptyCell, MarkX or MarkO.
type Board [9]string

// InRange reports whether cell is a valid board index.
func (that *Board) InRange(cell int) bool {
	return cell >= 0 && cell < len(that)
}

// IsLegal reports whether a mark may be placed on the given cell: the index
// must be in range and the cell still empty.
func (that *Board) IsLegal(cell int) bool {
	return that.InRange(cell) && that[cell] == EmptyCell
}

// Place writes a mark into a cell. Legality must already be checked.
func (that *Board) Place(cell int, mark string) {
	that[cell] = mark
}

// Evaluate inspects the board and returns the winning mark and true if any
// winning triple is complete, MarkTie and true if the board is full without
// a winner, or an empty mark and false while the game is still open. The
// winner scan runs before the full-board check, so a final move that both
// fills the board and completes a triple counts as a win, not a draw.
func (that *Board) Evaluate() (string, bool) {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a, true
		}
	}

	if that.IsFull() {
		return MarkTie, true
	}

	return EmptyCell, false
}

// IsFull reports whether every cell is occupied.
func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}
