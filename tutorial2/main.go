//go:build darwin || linux || windows

// Tutorial 2 draws the first triangle: one hard-coded triangle on a dark
// background in an 800x800 window, using an OpenGL 3.3 core context.
//
//	$ go install github.com/bmatsuo/learnopengl/tutorial2 && tutorial2
//
// The program exits with status 0 when the window is closed and -1 when the
// window or the shader program could not be created.
package main

import (
	"os"
	"runtime"

	"github.com/bmatsuo/learnopengl/glboot"
	"github.com/bmatsuo/learnopengl/glfwgl"
)

func init() {
	// GLFW event handling and the GL context belong to the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(glboot.Run(glfwgl.Platform{}, glboot.DefaultConfig()))
}
