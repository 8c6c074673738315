/*
Package glfwgl implements the glboot platform on top of GLFW 3.3 and the
OpenGL 3.3 core profile bindings from github.com/go-gl.

GLFW must be used from the main OS thread.  Programs should call
runtime.LockOSThread from an init function in package main.
*/
package glfwgl

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/bmatsuo/learnopengl/glboot"
)

// Platform is a glboot.Platform backed by GLFW.
type Platform struct{}

var _ glboot.Platform = Platform{}

// catch turns a panic raised by the glfw package into an error stored in
// *err.  glfw panics on notInitialized and noWindowContext, which happen
// when Init could not reach a display but reported success.
func catch(err *error, op string) {
	if r := recover(); r != nil {
		*err = errors.Errorf("%s: %v", op, r)
	}
}

// Init initializes GLFW.  A missing display is not always reported here;
// CreateWindow returns the error in that case.
func (Platform) Init() (err error) {
	defer catch(&err, "glfw init")
	return errors.Wrap(glfw.Init(), "glfw init")
}

// CreateWindow creates a window and its context using the hints in cfg.
func (Platform) CreateWindow(cfg glboot.WindowConfig) (_ glboot.Window, err error) {
	defer catch(&err, "glfw create window")
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	if cfg.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "glfw create window")
	}
	if w == nil {
		return nil, errors.New("glfw create window: no window returned")
	}
	return Window{w}, nil
}

// Device loads the OpenGL function pointers for the current context.
func (Platform) Device() (glboot.Device, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "gl init")
	}
	return Device{}, nil
}

// PollEvents processes pending window events.
func (Platform) PollEvents() {
	glfw.PollEvents()
}

// Terminate destroys remaining windows and releases GLFW.  It is safe to
// call after a failed CreateWindow.
func (Platform) Terminate() {
	var err error
	defer catch(&err, "glfw terminate")
	glfw.Terminate()
}

// Window is a glboot.Window backed by a GLFW window.
type Window struct {
	*glfw.Window
}

var _ glboot.Window = Window{}
