package tictactoe

// Mark is the content of a cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Other returns the opposing mark.
func (m Mark) Other() Mark {
	if m == X {
		return O
	}
	return X
}

// Result is the outcome of a board.
type Result uint8

const (
	InProgress Result = iota
	XWins
	OWins
	Draw
)

func (r Result) String() string {
	switch r {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// Lines are the eight winning triples: rows, columns, diagonals.
var Lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Board is a 3x3 grid indexed row-major 0..8.
type Board [9]Mark

// Winner returns the mark completing a line and the line index, or Empty and -1.
func (b Board) Winner() (Mark, int) {
	for i, l := range Lines {
		if m := b[l[0]]; m != Empty && m == b[l[1]] && m == b[l[2]] {
			return m, i
		}
	}
	return Empty, -1
}

// Full reports whether every cell is marked.
func (b Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// Result classifies the board.
func (b Board) Result() Result {
	switch w, _ := b.Winner(); w {
	case X:
		return XWins
	case O:
		return OWins
	}
	if b.Full() {
		return Draw
	}
	return InProgress
}

// CanPlace reports whether cell accepts a mark.
func (b Board) CanPlace(cell int) bool {
	return cell >= 0 && cell < len(b) && b[cell] == Empty && b.Result() == InProgress
}

// key packs the board in base 3; it fits in 15 bits.
func (b Board) key() uint32 {
	var k uint32
	for _, m := range b {
		k = k*3 + uint32(m)
	}
	return k
}
