package mat

import (
	"syscall/js"

	webgl "github.com/seqsense/webgl-go"
)

var float32Array = js.Global().Get("Float32Array")

// UniformMat4 sets the mat4 uniform at loc to m. Mat4's column-major
// storage matches uniformMatrix4fv's expected layout, so the matrix is
// uploaded without transposition.
func UniformMat4(gl *webgl.WebGL, loc webgl.Location, m Mat4) {
	matJS := float32Array.Call("of",
		m[0], m[1], m[2], m[3],
		m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11],
		m[12], m[13], m[14], m[15],
	)
	gl.JS().Call("uniformMatrix4fv", js.Value(loc), false, matJS)
}

// UniformVec3 sets the vec3 uniform at loc to v.
func UniformVec3(gl *webgl.WebGL, loc webgl.Location, v Vec3) {
	vecJS := float32Array.Call("of", v[0], v[1], v[2])
	gl.JS().Call("uniform3fv", js.Value(loc), vecJS)
}
