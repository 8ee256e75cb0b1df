package mat

import (
	pcmat "github.com/seqsense/pcgol/mat"
)

// ToPCGol converts m into the column-major layout used by pcgol and its
// WebGL bindings.
func ToPCGol(m Mat4) pcmat.Mat4 {
	var p pcmat.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			p[4*c+r] = m.e[4*r+c]
		}
	}
	return p
}

func FromPCGol(p pcmat.Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.e[4*r+c] = p[4*c+r]
		}
	}
	return m
}
