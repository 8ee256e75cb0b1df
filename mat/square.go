package mat

import (
	"fmt"
)

// Values is a nested table of matrix entries, indexed as values[row][col].
type Values [][]float32

// Elements lists the backing arrays of the supported square matrices.
type Elements interface {
	[9]float32 | [16]float32
}

// Square is an N×N float32 matrix stored row-major in a fixed-size array,
// element (row, col) at offset row*N+col.
// The zero value is the zero matrix and assignment copies all elements.
type Square[A Elements] struct {
	e A
}

// New builds a matrix from a table of N rows with N values each.
func New[A Elements](rows Values) (Square[A], error) {
	var m Square[A]
	n := m.N()
	if len(rows) != n {
		return Square[A]{}, fmt.Errorf("%d rows for %dx%d matrix: %w", len(rows), n, n, ErrInvalidDimension)
	}
	data := m.Data()
	for r, row := range rows {
		if len(row) != n {
			return Square[A]{}, fmt.Errorf("row %d has %d values, expected %d: %w", r, len(row), n, ErrInvalidDimension)
		}
		copy(data[r*n:(r+1)*n], row)
	}
	return m, nil
}

// N returns the number of rows (and columns).
func (m Square[A]) N() int {
	n := 1
	for n*n < len(m.e) {
		n++
	}
	return n
}

func (m Square[A]) At(row, col int) float32 {
	n := m.N()
	if row < 0 || n <= row || col < 0 || n <= col {
		panic(fmt.Sprintf("mat: index (%d, %d) out of range for %dx%d matrix", row, col, n, n))
	}
	return m.e[row*n+col]
}

// Rows copies the matrix into a newly allocated table.
func (m Square[A]) Rows() Values {
	n := m.N()
	rows := make(Values, n)
	for r := range rows {
		rows[r] = make([]float32, n)
		for c := range rows[r] {
			rows[r][c] = m.e[r*n+c]
		}
	}
	return rows
}

// Data returns the backing elements in row-major order without copying.
// The slice aliases m and must not be used after m goes away.
func (m *Square[A]) Data() []float32 {
	switch e := any(&m.e).(type) {
	case *[9]float32:
		return e[:]
	case *[16]float32:
		return e[:]
	}
	panic("mat: unsupported element array")
}

func (m Square[A]) Equal(a Square[A]) bool {
	for i := 0; i < len(m.e); i++ {
		if m.e[i] != a.e[i] {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether every element differs by at most tol.
func (m Square[A]) ApproxEqual(a Square[A], tol float32) bool {
	for i := 0; i < len(m.e); i++ {
		diff := m.e[i] - a.e[i]
		if !(-tol <= diff && diff <= tol) {
			return false
		}
	}
	return true
}

func (m Square[A]) Add(a Square[A]) Square[A] {
	out := m
	out.AddInPlace(a)
	return out
}

func (m *Square[A]) AddInPlace(a Square[A]) *Square[A] {
	for i := 0; i < len(m.e); i++ {
		m.e[i] += a.e[i]
	}
	return m
}

// Mul returns the matrix product m × a.
func (m Square[A]) Mul(a Square[A]) Square[A] {
	var out Square[A]
	n := m.N()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum float32
			for k := 0; k < n; k++ {
				sum += m.e[n*i+k] * a.e[n*k+j]
			}
			out.e[n*i+j] = sum
		}
	}
	return out
}

// MulInPlace replaces m by m × a.
// The product is completed before m is overwritten, so a may be m itself.
func (m *Square[A]) MulInPlace(a Square[A]) *Square[A] {
	*m = m.Mul(a)
	return m
}
