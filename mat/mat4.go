package mat

// Mat4 is a 4x4 matrix.
type Mat4 = Square[[16]float32]

func NewMat4(rows Values) (Mat4, error) {
	return New[[16]float32](rows)
}

// MustNewMat4 is like NewMat4 but panics on a malformed table.
func MustNewMat4(rows Values) Mat4 {
	m, err := NewMat4(rows)
	if err != nil {
		panic(err)
	}
	return m
}
