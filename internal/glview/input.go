//go:build !test
// +build !test

package glview

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"cube-demo/internal/render"
)

// inputHandler queues window events from GLFW callbacks until the next poll.
type inputHandler struct {
	pending []render.Event
}

func newInputHandler() *inputHandler {
	return &inputHandler{}
}

func (i *inputHandler) setupCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		render.Logger().Debug("framebuffer resized", "width", width, "height", height)
		i.pending = append(i.pending, render.EventResized)
	})
}

func (i *inputHandler) drain() []render.Event {
	events := i.pending
	i.pending = nil
	return events
}
