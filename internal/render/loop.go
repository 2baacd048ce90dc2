package render

import (
	"context"
	"fmt"

	"cube-demo/internal/config"
	"cube-demo/internal/mesh"
)

// Run sets up the surface, program and cube buffers on b, then renders
// until the window is closed, ctx is cancelled or cfg.MaxFrames frames have
// been presented. The first backend error ends the loop.
func Run(ctx context.Context, b Backend, cfg config.Config) error {
	log := Logger()

	err := b.CreateSurface(SurfaceOptions{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		DepthBits: cfg.Window.DepthBits,
	})
	if err != nil {
		return fmt.Errorf("create surface: %w", err)
	}
	defer b.Close()
	log.Info("surface created", "width", cfg.Window.Width, "height", cfg.Window.Height, "depth_bits", cfg.Window.DepthBits)

	vs, fs, err := LoadShaders(cfg.ShaderDir)
	if err != nil {
		return err
	}
	if err := b.CompileProgram(vs, fs); err != nil {
		return fmt.Errorf("compile program: %w", err)
	}
	log.Info("program compiled", "dir", cfg.ShaderDir)

	vertices := mesh.CubeVertices()
	indices := mesh.CubeIndices()
	if err := b.CreateBuffers(vertices[:], indices[:]); err != nil {
		return fmt.Errorf("create buffers: %w", err)
	}
	log.Info("buffers uploaded", "vertices", len(vertices), "indices", len(indices))

	scene := NewScene(cfg)
	params := DrawParams{
		ClearColor: cfg.ClearColor,
		Depth:      DepthLess,
		DepthWrite: true,
	}

	for frame := 0; cfg.MaxFrames == 0 || frame < cfg.MaxFrames; frame++ {
		if err := ctx.Err(); err != nil {
			log.Info("render loop cancelled", "frames", frame)
			return nil
		}

		w, h := b.Dimensions()
		if err := b.Draw(scene.Uniforms(w, h), params); err != nil {
			return fmt.Errorf("draw frame %d: %w", frame, err)
		}
		if err := b.Present(); err != nil {
			return fmt.Errorf("present frame %d: %w", frame, err)
		}

		for _, ev := range b.PollEvents() {
			switch ev {
			case EventClosed:
				log.Info("window closed", "frames", frame+1)
				return nil
			case EventResized:
				log.Debug("surface resized", "frame", frame)
			}
		}
	}
	log.Info("frame limit reached", "frames", cfg.MaxFrames)
	return nil
}
