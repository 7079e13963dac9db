package tictactoe

import "github.com/kamstrup/intmap"

// The CPU always plays O against a human X.
const (
	Human = X
	CPU   = O
)

// Minimax searches the full game tree from b.
// Terminal boards score +1 for a CPU win, -1 for a human win and 0 for a draw.
// CPU nodes maximize, human nodes minimize, and ties keep the lowest cell index.
// move is -1 when b is already terminal.
func Minimax(b Board, cpuToMove bool) (score, move int) {
	return search(&b, cpuToMove, nil)
}

type outcome struct {
	score int8
	move  int8
}

// Solver is Minimax with a transposition table. A Solver is not safe for
// concurrent use; every game owns its own.
type Solver struct {
	memo *intmap.Map[uint32, outcome]
}

// NewSolver creates a solver with an empty table.
func NewSolver() *Solver {
	return &Solver{memo: intmap.New[uint32, outcome](1024)}
}

// Best returns the same result as Minimax, reusing earlier searches.
func (s *Solver) Best(b Board, cpuToMove bool) (score, move int) {
	if s == nil {
		return Minimax(b, cpuToMove)
	}
	return search(&b, cpuToMove, s.memo)
}

func search(b *Board, cpuToMove bool, memo *intmap.Map[uint32, outcome]) (int, int) {
	switch b.Result() {
	case OWins:
		return 1, -1
	case XWins:
		return -1, -1
	case Draw:
		return 0, -1
	}

	var key uint32
	if memo != nil {
		key = b.key() << 1
		if cpuToMove {
			key |= 1
		}
		if o, ok := memo.Get(key); ok {
			return int(o.score), int(o.move)
		}
	}

	mark, best := Human, 2
	if cpuToMove {
		mark, best = CPU, -2
	}
	move := -1
	for i := range b {
		if b[i] != Empty {
			continue
		}
		b[i] = mark
		score, _ := search(b, !cpuToMove, memo)
		b[i] = Empty
		if (cpuToMove && score > best) || (!cpuToMove && score < best) {
			best, move = score, i
		}
	}

	if memo != nil {
		memo.Put(key, outcome{score: int8(best), move: int8(move)})
	}
	return best, move
}
