// Package config holds the demo's settings. Defaults reproduce the fixed
// scene; a TOML file may override any subset of them.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"cube-demo/internal/xform"
)

var ErrInvalid = errors.New("invalid config")

type Window struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	DepthBits int    `toml:"depth_bits"`
}

type Model struct {
	Scale  float32   `toml:"scale"`
	Offset xform.Pos `toml:"offset"`
}

type Camera struct {
	Eye    xform.Pos `toml:"eye"`
	Target xform.Pos `toml:"target"`
	Up     xform.Pos `toml:"up"`
}

type Config struct {
	Window     Window     `toml:"window"`
	ShaderDir  string     `toml:"shader_dir"`
	ClearColor [4]float32 `toml:"clear_color"`
	Model      Model      `toml:"model"`
	Camera     Camera     `toml:"camera"`
	// MaxFrames stops the loop after that many frames; 0 runs until closed.
	MaxFrames  int        `toml:"max_frames"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:     1024,
			Height:    768,
			Title:     "Cube",
			DepthBits: 24,
		},
		ShaderDir:  "shaders",
		ClearColor: [4]float32{0.2, 0.3, 0.3, 1.0},
		Model: Model{
			Scale:  0.05,
			Offset: xform.Pos{0, 0, 2},
		},
		Camera: Camera{
			Eye:    xform.Pos{2, -1, 1},
			Target: xform.Pos{-2, 1, 1},
			Up:     xform.Pos{0, 1, 0},
		},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.DepthBits <= 0:
		return fmt.Errorf("%w: depth_bits %d", ErrInvalid, c.Window.DepthBits)
	case c.ShaderDir == "":
		return fmt.Errorf("%w: shader_dir is empty", ErrInvalid)
	case c.MaxFrames < 0:
		return fmt.Errorf("%w: max_frames %d", ErrInvalid, c.MaxFrames)
	case isZero(c.Camera.Target):
		// Look normalizes the target directly.
		return fmt.Errorf("%w: camera target is the zero vector", ErrInvalid)
	case isZero(c.Camera.Up):
		return fmt.Errorf("%w: camera up is the zero vector", ErrInvalid)
	}
	return nil
}

func isZero(p xform.Pos) bool { return p == xform.Pos{} }
