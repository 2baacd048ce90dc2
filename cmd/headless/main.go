package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"cube-demo/internal/config"
	"cube-demo/internal/mesh"
	"cube-demo/internal/render"
	"cube-demo/internal/xform"
)

// headless prints the matrices a frame would upload and where each cube
// corner lands, without opening a window.
func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	width := flag.Uint("width", 800, "Viewport width in pixels")
	height := flag.Uint("height", 600, "Viewport height in pixels")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	u := render.NewScene(cfg).Uniforms(uint32(*width), uint32(*height))
	printMatrix(render.UniformModel, u.Model)
	printMatrix(render.UniformView, u.View)
	printMatrix(render.UniformProjection, u.Projection)

	mvp := u.Projection.Mul(u.View).Mul(u.Model)
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "vertex\tposition\tclip\tndc")
	for i, v := range mesh.CubeVertices() {
		clip, ndc, ok := mvp.MulPoint(v.Position)
		ndcText := "-"
		if ok {
			ndcText = fmt.Sprintf("%.4f", [3]float32(ndc))
		}
		fmt.Fprintf(tw, "%d\t%v\t%.4f\t%s\n", i, [3]float32(v.Position), clip, ndcText)
	}
	tw.Flush()
}

func printMatrix(name string, m xform.Mat4) {
	fmt.Printf("%s (columns):\n", name)
	for _, col := range m.Array() {
		fmt.Printf("  [% .6f % .6f % .6f % .6f]\n", col[0], col[1], col[2], col[3])
	}
}
