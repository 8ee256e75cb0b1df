package gl

import (
	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/glmath/mat"
)

// UniformMatrix4 uploads m to the mat4 uniform at loc.
// WebGL expects column-major data, so the matrix is converted on the way.
func UniformMatrix4(gl *webgl.WebGL, loc webgl.Location, m mat.Mat4) {
	gl.UniformMatrix4fv(loc, false, mat.ToPCGol(m))
}
