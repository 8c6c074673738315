/*
Package glboot sets up an OpenGL context, uploads a single triangle and draws
it every frame until the window asks to close.

The package does not talk to a windowing system or a GL driver directly.
Run is given a Platform, which creates the Window and the Device, so the
whole sequence can be driven by a real backend (see package glfwgl) or by a
recording fake.

	code := glboot.Run(glfwgl.Platform{}, glboot.DefaultConfig())
	os.Exit(code)
*/
package glboot

// Enum is an OpenGL enumerated value.  The constants below use the values
// from the OpenGL headers and are passed to the driver unchanged.
type Enum uint32

const (
	False Enum = 0
	True  Enum = 1

	Triangles Enum = 0x0004
	Float     Enum = 0x1406

	GLRenderer Enum = 0x1F01
	GLVersion  Enum = 0x1F02

	ColorBufferBit Enum = 0x4000

	ArrayBuffer Enum = 0x8892
	StaticDraw  Enum = 0x88E4

	FragmentShader Enum = 0x8B30
	VertexShader   Enum = 0x8B31
	CompileStatus  Enum = 0x8B81
	LinkStatus     Enum = 0x8B82
)

// Shader identifies a compiled shader stage.
type Shader struct{ Value uint32 }

// Program identifies a linked shader program.
type Program struct{ Value uint32 }

// Buffer identifies a GPU buffer object.
type Buffer struct{ Value uint32 }

// VertexArray identifies a vertex array object.
type VertexArray struct{ Value uint32 }

// Attrib identifies the location of a vertex attribute.
type Attrib struct{ Value uint }

// Device is the subset of an OpenGL 3.3 core context used to draw the
// triangle.  Method names and arguments follow golang.org/x/mobile/gl.
type Device interface {
	GetString(name Enum) string

	Viewport(x, y, width, height int)
	ClearColor(red, green, blue, alpha float32)
	Clear(mask Enum)

	CreateShader(ty Enum) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	UseProgram(p Program)
	DeleteProgram(p Program)

	CreateVertexArray() VertexArray
	BindVertexArray(va VertexArray)
	DeleteVertexArray(va VertexArray)

	CreateBuffer() Buffer
	BindBuffer(target Enum, b Buffer)
	BufferData(target Enum, src []byte, usage Enum)
	DeleteBuffer(b Buffer)

	VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int)
	EnableVertexAttribArray(a Attrib)

	DrawArrays(mode Enum, first, count int)
}

// Window is an OS window owning a GL context.
type Window interface {
	MakeContextCurrent()
	ShouldClose() bool
	SwapBuffers()
	Destroy()
}

// Platform is the windowing system.  Init must succeed before any other
// method is called and Terminate releases whatever Init acquired.
type Platform interface {
	Init() error
	CreateWindow(cfg WindowConfig) (Window, error)
	// Device loads GL function pointers for the current context.
	Device() (Device, error)
	PollEvents()
	Terminate()
}
