package render

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	VertexShaderFile   = "vertex.glsl"
	FragmentShaderFile = "fragment.glsl"
)

// LoadShaders reads the vertex and fragment sources from dir verbatim.
func LoadShaders(dir string) (vertex, fragment string, err error) {
	vertex, err = readShader(dir, VertexShaderFile)
	if err != nil {
		return "", "", err
	}
	fragment, err = readShader(dir, FragmentShaderFile)
	if err != nil {
		return "", "", err
	}
	return vertex, fragment, nil
}

func readShader(dir, name string) (string, error) {
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("load shader %s: %w", name, err)
	}
	return string(b), nil
}
