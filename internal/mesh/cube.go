// Package mesh holds the static geometry drawn by the demo.
package mesh

import "cube-demo/internal/xform"

type Vertex struct {
	Position xform.Pos
}

// VertexStride is the size in bytes of one Vertex in a GPU buffer.
const VertexStride = 3 * 4

var cubeVertices = [8]Vertex{
	{Position: xform.Pos{-0.5, 0.5, -0.5}},
	{Position: xform.Pos{0.5, 0.5, -0.5}},
	{Position: xform.Pos{-0.5, -0.5, -0.5}},
	{Position: xform.Pos{0.5, -0.5, -0.5}},
	{Position: xform.Pos{-0.5, 0.5, 0.5}},
	{Position: xform.Pos{0.5, 0.5, 0.5}},
	{Position: xform.Pos{-0.5, -0.5, 0.5}},
	{Position: xform.Pos{0.5, -0.5, 0.5}},
}

// Two triangles per face.
var cubeIndices = [36]uint16{
	0, 1, 2, 2, 3, 1,
	4, 5, 6, 6, 7, 5,
	0, 1, 4, 4, 5, 1,
	2, 3, 6, 6, 7, 3,
	0, 4, 2, 2, 6, 4,
	5, 1, 7, 7, 3, 1,
}

// CubeVertices returns a copy of the unit cube centered at the origin.
func CubeVertices() [8]Vertex { return cubeVertices }

// CubeIndices returns a copy of the cube's triangle list.
func CubeIndices() [36]uint16 { return cubeIndices }

// Flatten packs vertex positions into a float32 slice for upload.
func Flatten(vertices []Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*3)
	for _, v := range vertices {
		out = append(out, v.Position[0], v.Position[1], v.Position[2])
	}
	return out
}
