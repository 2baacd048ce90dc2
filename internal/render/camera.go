package render

import (
	"cube-demo/internal/config"
	"cube-demo/internal/xform"
)

type Camera struct {
	Eye    xform.Pos
	Target xform.Pos // used as a view direction by xform.Look
	Up     xform.Pos
}

func (c Camera) ViewMatrix() xform.Mat4 {
	return xform.Look(c.Eye, c.Target, c.Up)
}

func (c Camera) ProjectionMatrix(width, height uint32) xform.Mat4 {
	// A minimized window reports 0x0.
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return xform.Projection(width, height)
}

// Scene is the fixed content of a frame: one cube and a camera.
type Scene struct {
	Scale  float32
	Offset xform.Pos
	Camera Camera
}

func NewScene(cfg config.Config) Scene {
	return Scene{
		Scale:  cfg.Model.Scale,
		Offset: cfg.Model.Offset,
		Camera: Camera{
			Eye:    cfg.Camera.Eye,
			Target: cfg.Camera.Target,
			Up:     cfg.Camera.Up,
		},
	}
}

// Uniforms computes the three matrices for a viewport of the given size.
func (s Scene) Uniforms(width, height uint32) Uniforms {
	return Uniforms{
		Model:      xform.Model(s.Scale, s.Offset[0], s.Offset[1], s.Offset[2]),
		View:       s.Camera.ViewMatrix(),
		Projection: s.Camera.ProjectionMatrix(width, height),
	}
}
