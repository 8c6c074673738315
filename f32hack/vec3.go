package f32hack

import (
	"encoding/binary"

	"golang.org/x/mobile/exp/f32"
)

// Flatten3 returns a slice containing vs serialized as consecutive x, y, z
// components.  If len(dst) is at least 3*len(vs) then a slice of dst will be
// used to serialize the data and returned.
func Flatten3(dst []float32, vs []f32.Vec3) []float32 {
	n := 3 * len(vs)
	if len(dst) < n {
		dst = make([]float32, n)
	}
	dst = dst[:n]
	for i := range vs {
		dst[3*i+0] = vs[i][0]
		dst[3*i+1] = vs[i][1]
		dst[3*i+2] = vs[i][2]
	}
	return dst
}

// Bytes3 is like f32.Bytes but takes its values from vs, suitable for
// uploading to an ARRAY_BUFFER.
func Bytes3(vs []f32.Vec3) []byte {
	return f32.Bytes(binary.LittleEndian, Flatten3(nil, vs)...)
}
