package builder

import "github.com/katalvlaran/gcol/graph"

const (
	methodQueen  = "Queen"
	minQueenSide = 1
)

// Queen returns a Constructor for the queen graph of a rows×cols board.
// Square (r,c) is vertex r*cols+c; two squares are adjacent when a queen
// moves between them (same row, column or diagonal).
func Queen(rows, cols int) Constructor {
	if rows < minQueenSide || cols < minQueenSide {
		return failed(methodQueen, builderErrorf(methodQueen, ErrTooFewVertices,
			"board %dx%d smaller than %dx%d", rows, cols, minQueenSide, minQueenSide))
	}
	return Constructor{
		method: methodQueen,
		order:  rows * cols,
		emit: func(b *graph.Builder, base int, _ builderConfig) error {
			var r1, c1, r2, c2 int
			for r1 = 0; r1 < rows; r1++ {
				for c1 = 0; c1 < cols; c1++ {
					for r2 = r1; r2 < rows; r2++ {
						for c2 = 0; c2 < cols; c2++ {
							if r2 == r1 && c2 <= c1 {
								continue
							}
							if !queenAttacks(r1, c1, r2, c2) {
								continue
							}
							if err := addEdge(b, methodQueen, base, r1*cols+c1, r2*cols+c2); err != nil {
								return err
							}
						}
					}
				}
			}
			return nil
		},
	}
}

func queenAttacks(r1, c1, r2, c2 int) bool {
	dr, dc := r2-r1, c2-c1
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr == 0 || dc == 0 || dr == dc
}
