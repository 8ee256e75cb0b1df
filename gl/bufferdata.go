package gl

import (
	"github.com/seqsense/glmath/mat"
)

type BufferData interface {
	Bytes() []byte
}

type Float32ArrayBuffer []float32

func (b Float32ArrayBuffer) Bytes() []byte {
	return float32SliceAsByteSlice([]float32(b))
}

// MatrixBuffer returns the row-major elements of m as buffer data.
// The buffer aliases m.
func MatrixBuffer[A mat.Elements](m *mat.Square[A]) Float32ArrayBuffer {
	return Float32ArrayBuffer(m.Data())
}

// Bytes returns the raw row-major layout of m in native byte order,
// tightly packed, without copying.
func Bytes[A mat.Elements](m *mat.Square[A]) []byte {
	return MatrixBuffer(m).Bytes()
}
