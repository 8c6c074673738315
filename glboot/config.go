package glboot

import (
	"fmt"
	"log"

	"golang.org/x/mobile/exp/f32"
)

// WindowConfig describes the window and the context requested from a
// Platform.
type WindowConfig struct {
	Width  int
	Height int
	Title  string

	// Requested OpenGL context version.
	GLMajor int
	GLMinor int

	// CoreProfile requests a forward compatible core profile context.
	CoreProfile bool
}

// Config holds every value Run needs.  Nothing is read from flags, files or
// the environment.
type Config struct {
	Window WindowConfig

	ClearColor    f32.Vec4
	TriangleColor f32.Vec4

	VertexShader   string
	FragmentShader string

	// Logger receives diagnostics.  If nil the standard logger is used.
	Logger *log.Logger
}

// DefaultConfig returns the configuration of the first triangle tutorial.
func DefaultConfig() Config {
	c := Config{
		Window: WindowConfig{
			Width:       800,
			Height:      800,
			Title:       "learnOpenGL",
			GLMajor:     3,
			GLMinor:     3,
			CoreProfile: true,
		},
		ClearColor:    f32.Vec4{0.07, 0.13, 0.17, 1.0},
		TriangleColor: f32.Vec4{0.8, 0.3, 0.02, 1.0},
		VertexShader:  vertexShader,
	}
	c.FragmentShader = SolidFragmentShader(c.TriangleColor)
	return c
}

func (c *Config) logger() *log.Logger {
	if c.Logger == nil {
		return log.Default()
	}
	return c.Logger
}

// SolidFragmentShader returns the source of a fragment shader that paints
// every fragment with color.
func SolidFragmentShader(color f32.Vec4) string {
	return fmt.Sprintf(fragmentShaderFormat, color[0], color[1], color[2], color[3])
}

const vertexShader = `#version 330 core
layout (location = 0) in vec3 aPos;

void main() {
	gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}`

const fragmentShaderFormat = `#version 330 core
out vec4 FragColor;

void main() {
	FragColor = vec4(%g, %g, %g, %g);
}`
