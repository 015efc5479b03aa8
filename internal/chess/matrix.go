package chess

// Matrix is a boolean grid sized to a board, true at every marked square.
type Matrix [][]bool

// NewMatrix creates an all-false matrix with the given dimensions.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]bool, cols)
	}
	return m
}

// inside reports whether pos addresses a cell of the matrix.
func (m Matrix) inside(pos Position) bool {
	return pos.Row >= 0 && pos.Row < len(m) && pos.Col >= 0 && pos.Col < len(m[pos.Row])
}

// At reports whether pos is marked. Positions outside the matrix are never marked.
func (m Matrix) At(pos Position) bool {
	return m.inside(pos) && m[pos.Row][pos.Col]
}

// Set marks pos. Positions outside the matrix are ignored.
func (m Matrix) Set(pos Position) {
	if m.inside(pos) {
		m[pos.Row][pos.Col] = true
	}
}

// Any reports whether at least one square is marked.
func (m Matrix) Any() bool {
	for _, row := range m {
		for _, v := range row {
			if v {
				return true
			}
		}
	}
	return false
}

// Positions lists the marked squares in row-major order.
func (m Matrix) Positions() []Position {
	var out []Position
	for r, row := range m {
		for c, v := range row {
			if v {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}
	return out
}

// Count returns the number of marked squares.
func (m Matrix) Count() int {
	n := 0
	for _, row := range m {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}
