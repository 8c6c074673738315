package glboot

// State is the lifecycle state of a Renderer.
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Renderer owns the GPU objects needed to draw the triangle.
type Renderer struct {
	dev        Device
	clearColor [4]float32

	program Program
	vao     VertexArray
	vbo     Buffer

	state State
}

// NewRenderer configures the viewport, builds the shader program and
// uploads the triangle.  The context of dev must be current.
func NewRenderer(dev Device, cfg Config) (*Renderer, error) {
	dev.Viewport(0, 0, cfg.Window.Width, cfg.Window.Height)

	program, err := CreateProgram(dev, cfg.VertexShader, cfg.FragmentShader)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		dev:        dev,
		clearColor: cfg.ClearColor,
		program:    program,
	}

	// the vertex array must be bound before the buffer so it records the
	// attribute layout
	r.vao = dev.CreateVertexArray()
	r.vbo = dev.CreateBuffer()
	dev.BindVertexArray(r.vao)
	dev.BindBuffer(ArrayBuffer, r.vbo)
	dev.BufferData(ArrayBuffer, triangleVertexData(), StaticDraw)

	pos := Attrib{Value: positionAttrib}
	dev.VertexAttribPointer(pos, coordsPerVertex, Float, false, 4*coordsPerVertex, 0)
	dev.EnableVertexAttribArray(pos)

	dev.BindBuffer(ArrayBuffer, Buffer{})
	dev.BindVertexArray(VertexArray{})

	return r, nil
}

// State returns Running until Release is called.
func (r *Renderer) State() State {
	return r.state
}

// Clear fills the color buffer with the background color.
func (r *Renderer) Clear() {
	c := r.clearColor
	r.dev.ClearColor(c[0], c[1], c[2], c[3])
	r.dev.Clear(ColorBufferBit)
}

// Draw renders one frame into the back buffer.  Draw does nothing after
// Release.
func (r *Renderer) Draw() {
	if r.state != Running {
		return
	}
	r.Clear()
	r.dev.UseProgram(r.program)
	r.dev.BindVertexArray(r.vao)
	r.dev.DrawArrays(Triangles, 0, triangleVertexCount)
}

// Release deletes the vertex array, the buffer and the program.  Calling
// Release more than once has no effect.
func (r *Renderer) Release() {
	if r.state == Terminated {
		return
	}
	r.state = Terminated
	r.dev.DeleteVertexArray(r.vao)
	r.dev.DeleteBuffer(r.vbo)
	r.dev.DeleteProgram(r.program)
}
