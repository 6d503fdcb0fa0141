// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux || darwin || windows || freebsd

/*
Package glwin provides an offscreen.Context backed by a hidden GLFW window
and the go-gl OpenGL bindings.

GL contexts are tied to an OS thread. Lock the goroutine with
runtime.LockOSThread before creating a Context and keep every call to the
context, and to draw buffers created from it, on that thread.
*/
package glwin

import (
	"fmt"
	"sync"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-gfx/offscreen"
	ogl "github.com/go-gfx/offscreen/gl"
)

// Context is a rendering context owning a hidden native window.
type Context struct {
	win   *glfw.Window
	f     ogl.Functions
	attrs offscreen.Attributes
	caps  offscreen.Caps
}

var glfwOnce sync.Once

// NewContext creates a hidden-window context with the given attributes.
// The context is current on the calling thread when NewContext returns.
func NewContext(attrs offscreen.Attributes) (*Context, error) {
	var initErr error
	glfwOnce.Do(func() {
		initErr = glfw.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("glwin: initializing glfw: %w", initErr)
	}
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	win, err := glfw.CreateWindow(1, 1, "offscreen", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glwin: creating window: %w", err)
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		return nil, fmt.Errorf("glwin: loading GL: %w", err)
	}
	c := &Context{
		win:   win,
		f:     new(glFunctions),
		attrs: attrs,
	}
	c.caps.MaxSamples = c.detectMaxSamples()
	return c, nil
}

// detectMaxSamples queries the multisample limit. Contexts predating
// multisample renderbuffers flag the query as an error; report no support
// for those.
func (c *Context) detectMaxSamples() int {
	n := c.f.GetInteger(ogl.MAX_SAMPLES)
	if c.f.GetError() != ogl.NO_ERROR {
		return 0
	}
	return n
}

// MakeCurrent implements offscreen.Context.
func (c *Context) MakeCurrent() error {
	c.win.MakeContextCurrent()
	return nil
}

// ReleaseCurrent detaches the context from the calling thread.
func (c *Context) ReleaseCurrent() {
	glfw.DetachCurrentContext()
}

// Attributes implements offscreen.Context.
func (c *Context) Attributes() offscreen.Attributes {
	return c.attrs
}

// Caps implements offscreen.Context.
func (c *Context) Caps() offscreen.Caps {
	return c.caps
}

// Functions implements offscreen.Context.
func (c *Context) Functions() ogl.Functions {
	return c.f
}

// Release destroys the window and its context. Draw buffers created from
// the context must be released first.
func (c *Context) Release() {
	if c.win != nil {
		c.win.Destroy()
		c.win = nil
	}
}
