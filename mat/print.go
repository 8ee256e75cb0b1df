package mat

import (
	"io"
	"os"
	"strconv"
	"strings"
)

// String formats the matrix as N lines of N space separated values.
func (m Square[A]) String() string {
	n := m.N()
	lines := make([]string, 0, n)
	for row := 0; row < n; row++ {
		vals := make([]string, 0, n)
		for col := 0; col < n; col++ {
			vals = append(vals, strconv.FormatFloat(float64(m.e[row*n+col]), 'g', -1, 32))
		}
		lines = append(lines, strings.Join(vals, " "))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Square[A]) Fprint(w io.Writer) error {
	_, err := io.WriteString(w, m.String())
	return err
}

// Print writes the matrix to the standard output.
func Print[A Elements](m Square[A]) error {
	return m.Fprint(os.Stdout)
}
