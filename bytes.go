package mat

import (
	"reflect"
	"unsafe"
)

func float32SliceAsByteSlice(floats []float32) []byte {
	n := 4 * len(floats)

	up := unsafe.Pointer(&(floats[0]))
	pi := (*[1]byte)(up)
	buf := (*pi)[:]
	sh := (*reflect.SliceHeader)(unsafe.Pointer(&buf))
	sh.Len = n
	sh.Cap = n

	return buf
}

// Bytes returns the 16 elements as 64 bytes in storage order with the
// platform float32 representation, suitable for uploading to a uniform
// or constant buffer expecting a column-major mat4. The result is backed
// by a copy of m.
func (m Mat4) Bytes() []byte {
	return float32SliceAsByteSlice(m[:])
}

// Bytes returns the components as 12 bytes, suitable for buffer upload.
// The result is backed by a copy of v.
func (v Vec3) Bytes() []byte {
	return float32SliceAsByteSlice(v[:])
}
