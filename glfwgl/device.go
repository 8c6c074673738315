package glfwgl

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/bmatsuo/learnopengl/glboot"
)

// Device is a glboot.Device that calls the OpenGL context current on the
// calling thread.
type Device struct{}

var _ glboot.Device = Device{}

func (Device) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (Device) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (Device) GetString(name glboot.Enum) string {
	return gl.GoStr(gl.GetString(uint32(name)))
}

func (Device) Clear(mask glboot.Enum) {
	gl.Clear(uint32(mask))
}

func (Device) CreateShader(ty glboot.Enum) glboot.Shader {
	return glboot.Shader{Value: gl.CreateShader(uint32(ty))}
}

func (Device) ShaderSource(s glboot.Shader, src string) {
	csrc, free := gl.Strs(src)
	defer free()
	length := int32(len(src))
	gl.ShaderSource(s.Value, 1, csrc, &length)
}

func (Device) CompileShader(s glboot.Shader) {
	gl.CompileShader(s.Value)
}

func (Device) GetShaderi(s glboot.Shader, pname glboot.Enum) int {
	var v int32
	gl.GetShaderiv(s.Value, uint32(pname), &v)
	return int(v)
}

func (Device) GetShaderInfoLog(s glboot.Shader) string {
	var n int32
	gl.GetShaderiv(s.Value, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(n)+1)
	gl.GetShaderInfoLog(s.Value, n, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

func (Device) DeleteShader(s glboot.Shader) {
	gl.DeleteShader(s.Value)
}

func (Device) CreateProgram() glboot.Program {
	return glboot.Program{Value: gl.CreateProgram()}
}

func (Device) AttachShader(p glboot.Program, s glboot.Shader) {
	gl.AttachShader(p.Value, s.Value)
}

func (Device) LinkProgram(p glboot.Program) {
	gl.LinkProgram(p.Value)
}

func (Device) GetProgrami(p glboot.Program, pname glboot.Enum) int {
	var v int32
	gl.GetProgramiv(p.Value, uint32(pname), &v)
	return int(v)
}

func (Device) GetProgramInfoLog(p glboot.Program) string {
	var n int32
	gl.GetProgramiv(p.Value, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(n)+1)
	gl.GetProgramInfoLog(p.Value, n, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}

func (Device) UseProgram(p glboot.Program) {
	gl.UseProgram(p.Value)
}

func (Device) DeleteProgram(p glboot.Program) {
	gl.DeleteProgram(p.Value)
}

func (Device) CreateVertexArray() glboot.VertexArray {
	var va uint32
	gl.GenVertexArrays(1, &va)
	return glboot.VertexArray{Value: va}
}

func (Device) BindVertexArray(va glboot.VertexArray) {
	gl.BindVertexArray(va.Value)
}

func (Device) DeleteVertexArray(va glboot.VertexArray) {
	gl.DeleteVertexArrays(1, &va.Value)
}

func (Device) CreateBuffer() glboot.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return glboot.Buffer{Value: b}
}

func (Device) BindBuffer(target glboot.Enum, b glboot.Buffer) {
	gl.BindBuffer(uint32(target), b.Value)
}

func (Device) BufferData(target glboot.Enum, src []byte, usage glboot.Enum) {
	if len(src) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(src), gl.Ptr(src), uint32(usage))
}

func (Device) DeleteBuffer(b glboot.Buffer) {
	gl.DeleteBuffers(1, &b.Value)
}

func (Device) VertexAttribPointer(dst glboot.Attrib, size int, ty glboot.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(uint32(dst.Value), int32(size), uint32(ty), normalized, int32(stride), uintptr(offset))
}

func (Device) EnableVertexAttribArray(a glboot.Attrib) {
	gl.EnableVertexAttribArray(uint32(a.Value))
}

func (Device) DrawArrays(mode glboot.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}
