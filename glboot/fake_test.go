package glboot

import (
	"errors"
	"fmt"
)

// fakeDevice records the calls made on it.  Object names are allocated from
// a single counter so every handle is distinct.
type fakeDevice struct {
	calls []string
	next  uint32

	failCompile map[Enum]string // shader type -> info log
	failLink    string

	shaders    map[Shader]Enum
	sources    map[Shader]string
	deleted    map[string]int
	draws      int
	bufferData []byte
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		failCompile: make(map[Enum]string),
		shaders:     make(map[Shader]Enum),
		sources:     make(map[Shader]string),
		deleted:     make(map[string]int),
	}
}

func (d *fakeDevice) record(format string, args ...interface{}) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) alloc() uint32 {
	d.next++
	return d.next
}

func (d *fakeDevice) count(prefix string) int {
	n := 0
	for _, c := range d.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (d *fakeDevice) GetString(name Enum) string {
	switch name {
	case GLVersion:
		return "3.3 (Core Profile) fake"
	case GLRenderer:
		return "fake renderer"
	}
	return ""
}

func (d *fakeDevice) Viewport(x, y, width, height int) {
	d.record("Viewport %d %d %d %d", x, y, width, height)
}

func (d *fakeDevice) ClearColor(r, g, b, a float32) {
	d.record("ClearColor %g %g %g %g", r, g, b, a)
}

func (d *fakeDevice) Clear(mask Enum) { d.record("Clear 0x%x", uint32(mask)) }

func (d *fakeDevice) CreateShader(ty Enum) Shader {
	s := Shader{d.alloc()}
	d.shaders[s] = ty
	d.record("CreateShader %s", stageName(ty))
	return s
}

func (d *fakeDevice) ShaderSource(s Shader, src string) {
	d.sources[s] = src
	d.record("ShaderSource %d", s.Value)
}

func (d *fakeDevice) CompileShader(s Shader) { d.record("CompileShader %d", s.Value) }

func (d *fakeDevice) GetShaderi(s Shader, pname Enum) int {
	if pname != CompileStatus {
		return 0
	}
	if _, ok := d.failCompile[d.shaders[s]]; ok {
		return int(False)
	}
	return int(True)
}

func (d *fakeDevice) GetShaderInfoLog(s Shader) string {
	return d.failCompile[d.shaders[s]]
}

func (d *fakeDevice) DeleteShader(s Shader) {
	d.deleted[fmt.Sprintf("shader %d", s.Value)]++
	d.record("DeleteShader %d", s.Value)
}

func (d *fakeDevice) CreateProgram() Program {
	d.record("CreateProgram")
	return Program{d.alloc()}
}

func (d *fakeDevice) AttachShader(p Program, s Shader) {
	d.record("AttachShader %d %d", p.Value, s.Value)
}

func (d *fakeDevice) LinkProgram(p Program) { d.record("LinkProgram %d", p.Value) }

func (d *fakeDevice) GetProgrami(p Program, pname Enum) int {
	if pname == LinkStatus && d.failLink != "" {
		return int(False)
	}
	return int(True)
}

func (d *fakeDevice) GetProgramInfoLog(p Program) string { return d.failLink }

func (d *fakeDevice) UseProgram(p Program) { d.record("UseProgram %d", p.Value) }

func (d *fakeDevice) DeleteProgram(p Program) {
	d.deleted[fmt.Sprintf("program %d", p.Value)]++
	d.record("DeleteProgram %d", p.Value)
}

func (d *fakeDevice) CreateVertexArray() VertexArray {
	d.record("CreateVertexArray")
	return VertexArray{d.alloc()}
}

func (d *fakeDevice) BindVertexArray(va VertexArray) { d.record("BindVertexArray %d", va.Value) }

func (d *fakeDevice) DeleteVertexArray(va VertexArray) {
	d.deleted[fmt.Sprintf("vertex array %d", va.Value)]++
	d.record("DeleteVertexArray %d", va.Value)
}

func (d *fakeDevice) CreateBuffer() Buffer {
	d.record("CreateBuffer")
	return Buffer{d.alloc()}
}

func (d *fakeDevice) BindBuffer(target Enum, b Buffer) {
	d.record("BindBuffer 0x%x %d", uint32(target), b.Value)
}

func (d *fakeDevice) BufferData(target Enum, src []byte, usage Enum) {
	d.bufferData = append([]byte(nil), src...)
	d.record("BufferData 0x%x %d 0x%x", uint32(target), len(src), uint32(usage))
}

func (d *fakeDevice) DeleteBuffer(b Buffer) {
	d.deleted[fmt.Sprintf("buffer %d", b.Value)]++
	d.record("DeleteBuffer %d", b.Value)
}

func (d *fakeDevice) VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int) {
	d.record("VertexAttribPointer %d %d 0x%x %v %d %d", dst.Value, size, uint32(ty), normalized, stride, offset)
}

func (d *fakeDevice) EnableVertexAttribArray(a Attrib) {
	d.record("EnableVertexAttribArray %d", a.Value)
}

func (d *fakeDevice) DrawArrays(mode Enum, first, count int) {
	d.draws++
	d.record("DrawArrays 0x%x %d %d", uint32(mode), first, count)
}

// fakeWindow reports a close request after frames calls to ShouldClose
// returned false.
type fakeWindow struct {
	dev       *fakeDevice
	frames    int
	polls     int
	swaps     int
	current   bool
	destroyed int
}

func (w *fakeWindow) MakeContextCurrent() { w.current = true }

func (w *fakeWindow) ShouldClose() bool {
	if w.frames <= 0 {
		return true
	}
	w.frames--
	return false
}

func (w *fakeWindow) SwapBuffers() {
	w.swaps++
	if w.dev != nil {
		w.dev.record("SwapBuffers")
	}
}

func (w *fakeWindow) Destroy() {
	w.destroyed++
	if w.dev != nil {
		w.dev.record("Destroy")
	}
}

type fakePlatform struct {
	win *fakeWindow
	dev *fakeDevice

	initErr   error
	windowErr error
	deviceErr error

	windowCfg   WindowConfig
	polls       int
	terminated  int
	deviceCalls int
}

var errNoDisplay = errors.New("no display")

func (p *fakePlatform) Init() error { return p.initErr }

func (p *fakePlatform) CreateWindow(cfg WindowConfig) (Window, error) {
	p.windowCfg = cfg
	if p.windowErr != nil {
		return nil, p.windowErr
	}
	return p.win, nil
}

func (p *fakePlatform) Device() (Device, error) {
	p.deviceCalls++
	if p.deviceErr != nil {
		return nil, p.deviceErr
	}
	if !p.win.current {
		return nil, errors.New("no current context")
	}
	return p.dev, nil
}

func (p *fakePlatform) PollEvents() {
	p.polls++
	p.win.polls++
}

func (p *fakePlatform) Terminate() {
	p.terminated++
	p.dev.record("Terminate")
}
