package glboot

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ShaderError is returned when the driver rejects a shader stage or fails
// to link a program.  Log holds the driver's info log.
type ShaderError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *ShaderError) Error() string {
	msg := strings.TrimRight(e.Log, "\x00\n ")
	if msg == "" {
		msg = "no info log"
	}
	if e.Stage == "link" {
		return fmt.Sprintf("program link failed: %s", msg)
	}
	return fmt.Sprintf("%s shader compile failed: %s", e.Stage, msg)
}

// CreateProgram compiles vsrc and fsrc and links them into a program.  The
// intermediate shader objects are deleted before CreateProgram returns,
// whether or not it succeeds.
func CreateProgram(dev Device, vsrc, fsrc string) (Program, error) {
	program := dev.CreateProgram()
	if program.Value == 0 {
		return Program{}, errors.New("no programs available")
	}

	vertexShader, err := loadShader(dev, VertexShader, vsrc)
	if err != nil {
		dev.DeleteProgram(program)
		return Program{}, err
	}
	fragmentShader, err := loadShader(dev, FragmentShader, fsrc)
	if err != nil {
		dev.DeleteShader(vertexShader)
		dev.DeleteProgram(program)
		return Program{}, err
	}

	dev.AttachShader(program, vertexShader)
	dev.AttachShader(program, fragmentShader)
	dev.LinkProgram(program)

	// linked programs keep what they need
	dev.DeleteShader(vertexShader)
	dev.DeleteShader(fragmentShader)

	if Enum(dev.GetProgrami(program, LinkStatus)) == False {
		err := &ShaderError{Stage: "link", Log: dev.GetProgramInfoLog(program)}
		dev.DeleteProgram(program)
		return Program{}, err
	}
	return program, nil
}

func loadShader(dev Device, ty Enum, src string) (Shader, error) {
	shader := dev.CreateShader(ty)
	if shader.Value == 0 {
		return Shader{}, errors.Errorf("could not create %s shader", stageName(ty))
	}
	dev.ShaderSource(shader, src)
	dev.CompileShader(shader)
	if Enum(dev.GetShaderi(shader, CompileStatus)) == False {
		err := &ShaderError{Stage: stageName(ty), Log: dev.GetShaderInfoLog(shader)}
		dev.DeleteShader(shader)
		return Shader{}, err
	}
	return shader, nil
}

func stageName(ty Enum) string {
	switch ty {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return fmt.Sprintf("0x%x", uint32(ty))
	}
}
