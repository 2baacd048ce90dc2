//go:build !test
// +build !test

package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"cube-demo/internal/config"
	"cube-demo/internal/glview"
	"cube-demo/internal/render"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	shaderDir := flag.String("shaders", "", "Directory holding vertex.glsl and fragment.glsl")
	width := flag.Int("width", 0, "Window width in pixels")
	height := flag.Int("height", 0, "Window height in pixels")
	frames := flag.Int("frames", -1, "Stop after this many frames (0 = until closed)")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	if *shaderDir != "" {
		cfg.ShaderDir = *shaderDir
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if *frames >= 0 {
		cfg.MaxFrames = *frames
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := render.Run(ctx, glview.New(), cfg); err != nil {
		log.Fatal(err)
	}
}
