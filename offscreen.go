// SPDX-License-Identifier: Unlicense OR MIT

/*
Package offscreen manages offscreen OpenGL render targets backed by a
framebuffer object and its renderbuffer attachments.

A DrawBuffer owns a color renderbuffer and, depending on the context
attributes, depth and stencil renderbuffers, all attached to one
framebuffer object. GL object names are scoped to the context that created
them, so every operation on a DrawBuffer, teardown included, makes the
originating context current first.

GL contexts are bound to an OS thread and this package does no locking of
its own; callers serialize access to a DrawBuffer and its context. Package
glwin provides a desktop Context implementation.
*/
package offscreen

import "github.com/go-gfx/offscreen/gl"

// Attributes is the buffer configuration requested from a context.
type Attributes struct {
	Alpha     bool
	Depth     bool
	Stencil   bool
	Antialias bool
}

// Caps describes the negotiated capabilities of a context.
type Caps struct {
	// MaxSamples is the maximum supported multisample count. Zero means
	// the context has no multisample support.
	MaxSamples int
}

// Context is a rendering context. A DrawBuffer holds its Context but does
// not own it; the context must outlive every DrawBuffer created from it.
type Context interface {
	// MakeCurrent makes the context current on the calling thread.
	MakeCurrent() error
	Attributes() Attributes
	Caps() Caps
	// Functions returns the GL backend of the context. It must only be
	// used while the context is current.
	Functions() gl.Functions
}

// ColorFormat selects the pixel format of the color renderbuffer.
type ColorFormat uint8

const (
	// RGBA4 is 4 bits per channel with alpha, the only format available
	// on both GLES 2 and desktop profiles. It is selected regardless of
	// the Alpha attribute.
	RGBA4 ColorFormat = iota
	// RGB4 drops the alpha channel. Never selected: GL_RGB4 is missing
	// from GLES and GL_RGB565 from OpenGL 3.
	RGB4
)

func (c ColorFormat) internalFormat() gl.Enum {
	if c == RGB4 {
		return gl.RGB4
	}
	return gl.RGBA4
}
