//go:build !test
// +build !test

package glview

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"cube-demo/internal/mesh"
	"cube-demo/internal/render"
)

var errNoSurface = errors.New("surface not created")

type Backend struct {
	window *glfw.Window
	input  *inputHandler

	program       uint32
	vao, vbo, ebo uint32
	indexCount    int32
	modelLoc      int32
	viewLoc       int32
	projectionLoc int32
}

func New() *Backend {
	return &Backend{input: newInputHandler()}
}

func (b *Backend) CreateSurface(opts render.SurfaceOptions) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, opts.DepthBits)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return fmt.Errorf("init opengl: %w", err)
	}
	b.window = window
	b.input.setupCallbacks(window)

	render.Logger().Info("opengl ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))
	return nil
}

func (b *Backend) CompileProgram(vertexSrc, fragmentSrc string) error {
	if b.window == nil {
		return errNoSurface
	}
	program, err := linkProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return err
	}
	b.program = program
	b.modelLoc = gl.GetUniformLocation(program, gl.Str(render.UniformModel+"\x00"))
	b.viewLoc = gl.GetUniformLocation(program, gl.Str(render.UniformView+"\x00"))
	b.projectionLoc = gl.GetUniformLocation(program, gl.Str(render.UniformProjection+"\x00"))
	return nil
}

func (b *Backend) CreateBuffers(vertices []mesh.Vertex, indices []uint16) error {
	if b.window == nil {
		return errNoSurface
	}
	flat := mesh.Flatten(vertices)

	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.GenBuffers(1, &b.ebo)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(flat)*4, gl.Ptr(flat), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, mesh.VertexStride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	b.indexCount = int32(len(indices))
	return glError("create buffers")
}

func (b *Backend) Dimensions() (uint32, uint32) {
	if b.window == nil {
		return 0, 0
	}
	w, h := b.window.GetFramebufferSize()
	return uint32(w), uint32(h)
}

func (b *Backend) Draw(u render.Uniforms, p render.DrawParams) error {
	if b.window == nil {
		return errNoSurface
	}
	w, h := b.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))

	c := p.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.ClearDepth(1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	switch p.Depth {
	case render.DepthLess:
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
	default:
		gl.Disable(gl.DEPTH_TEST)
	}
	gl.DepthMask(p.DepthWrite)

	model, view, projection := u.Model.GL(), u.View.GL(), u.Projection.GL()
	gl.UseProgram(b.program)
	gl.UniformMatrix4fv(b.modelLoc, 1, false, &model[0])
	gl.UniformMatrix4fv(b.viewLoc, 1, false, &view[0])
	gl.UniformMatrix4fv(b.projectionLoc, 1, false, &projection[0])

	gl.BindVertexArray(b.vao)
	gl.DrawElements(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_SHORT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
	return glError("draw")
}

func (b *Backend) Present() error {
	if b.window == nil {
		return errNoSurface
	}
	b.window.SwapBuffers()
	return nil
}

func (b *Backend) PollEvents() []render.Event {
	glfw.PollEvents()
	events := b.input.drain()
	if b.window != nil && b.window.ShouldClose() {
		events = append(events, render.EventClosed)
	}
	return events
}

func (b *Backend) Close() {
	if b.window == nil {
		return
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		gl.DeleteBuffers(1, &b.vbo)
		gl.DeleteBuffers(1, &b.ebo)
	}
	if b.program != 0 {
		gl.DeleteProgram(b.program)
	}
	b.window.Destroy()
	b.window = nil
	glfw.Terminate()
}

func glError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: gl error 0x%x", op, code)
	}
	return nil
}
