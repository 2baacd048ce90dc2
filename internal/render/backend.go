// Package render drives the per-frame loop over an injected windowing and
// graphics backend.
package render

import (
	"cube-demo/internal/mesh"
	"cube-demo/internal/xform"
)

// Uniform names expected by the shader program.
const (
	UniformModel      = "model"
	UniformView       = "view"
	UniformProjection = "projection"
)

type Event int

const (
	EventClosed Event = iota + 1
	EventResized
)

func (e Event) String() string {
	switch e {
	case EventClosed:
		return "closed"
	case EventResized:
		return "resized"
	default:
		return "unknown"
	}
}

type SurfaceOptions struct {
	Width     int
	Height    int
	Title     string
	DepthBits int
}

type Uniforms struct {
	Model      xform.Mat4
	View       xform.Mat4
	Projection xform.Mat4
}

type DepthTest int

const (
	DepthAlways DepthTest = iota
	DepthLess
)

type DrawParams struct {
	ClearColor [4]float32
	Depth      DepthTest
	DepthWrite bool
}

// Backend is the window and GPU capability the loop renders through.
// Every method except PollEvents and Dimensions may fail; the loop treats
// any failure as fatal.
type Backend interface {
	CreateSurface(opts SurfaceOptions) error
	CompileProgram(vertexSrc, fragmentSrc string) error
	CreateBuffers(vertices []mesh.Vertex, indices []uint16) error
	// Dimensions reports the drawable size in pixels.
	Dimensions() (width, height uint32)
	Draw(u Uniforms, p DrawParams) error
	Present() error
	PollEvents() []Event
	Close()
}
