package mat

// Mat3 is a 3x3 matrix.
type Mat3 = Square[[9]float32]

func NewMat3(rows Values) (Mat3, error) {
	return New[[9]float32](rows)
}

// MustNewMat3 is like NewMat3 but panics on a malformed table.
func MustNewMat3(rows Values) Mat3 {
	m, err := NewMat3(rows)
	if err != nil {
		panic(err)
	}
	return m
}
