package glboot

import (
	"math"

	"github.com/bmatsuo/learnopengl/f32hack"
	"golang.org/x/mobile/exp/f32"
)

const (
	coordsPerVertex     = 3
	triangleVertexCount = 3

	// location of aPos in the vertex shader
	positionAttrib = 0
)

var sqrt3 = float32(math.Sqrt(3))

// TriangleVertices returns the corners of an equilateral triangle centered
// on the origin with sides of length 1.
func TriangleVertices() [triangleVertexCount]f32.Vec3 {
	return [triangleVertexCount]f32.Vec3{
		{-0.5, -0.5 * sqrt3 / 3, 0}, // lower left
		{0.5, -0.5 * sqrt3 / 3, 0},  // lower right
		{0, 0.5 * sqrt3 * 2 / 3, 0}, // top
	}
}

func triangleVertexData() []byte {
	vs := TriangleVertices()
	return f32hack.Bytes3(vs[:])
}
