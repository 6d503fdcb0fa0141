// SPDX-License-Identifier: Unlicense OR MIT

package offscreen

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gfx/offscreen/gl"
)

var (
	// ErrUnsupportedAntialiasing is returned when antialiasing is
	// requested from a context without multisample support.
	ErrUnsupportedAntialiasing = errors.New("offscreen: context does not support requested antialiasing")
	// ErrContextActivation wraps a failure to make the context current.
	ErrContextActivation = errors.New("offscreen: failed to make context current")
	// ErrRenderbufferAlloc is returned when the backend fails to allocate
	// a renderbuffer.
	ErrRenderbufferAlloc = errors.New("offscreen: renderbuffer allocation failed")
	// ErrFramebufferAlloc is returned when the backend fails to allocate
	// the framebuffer object.
	ErrFramebufferAlloc = errors.New("offscreen: framebuffer allocation failed")
	// ErrFramebufferIncomplete is returned when the framebuffer fails
	// validation after its renderbuffers are attached.
	ErrFramebufferIncomplete = errors.New("offscreen: framebuffer incomplete")
)

// DrawBuffer is an offscreen render target: a framebuffer object with a
// color renderbuffer and optional depth and stencil renderbuffers.
//
// A DrawBuffer cannot be resized or reallocated. Callers needing a
// different size or format release the buffer and construct a new one.
type DrawBuffer struct {
	ctx  Context
	f    gl.Functions
	size image.Point

	fbo     gl.Framebuffer
	color   gl.Renderbuffer
	depth   gl.Renderbuffer
	stencil gl.Renderbuffer
}

// New creates a DrawBuffer of the given size for ctx, making ctx current.
// The color renderbuffer is always allocated; depth and stencil
// renderbuffers are allocated according to the context attributes.
//
// Multisampled buffers are not implemented. Requesting antialiasing from a
// context that reports no multisample support fails before any GL object
// is allocated. A failure after the first allocation releases everything
// allocated up to that point.
func New(ctx Context, size image.Point) (*DrawBuffer, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("offscreen: invalid size %v", size)
	}
	attrs := ctx.Attributes()
	caps := ctx.Caps()
	if attrs.Antialias && caps.MaxSamples == 0 {
		return nil, ErrUnsupportedAntialiasing
	}
	if err := ctx.MakeCurrent(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContextActivation, err)
	}
	b := &DrawBuffer{
		ctx:  ctx,
		f:    ctx.Functions(),
		size: size,
	}
	if err := b.init(attrs); err != nil {
		b.destroy()
		return nil, err
	}
	return b, nil
}

func (b *DrawBuffer) init(attrs Attributes) error {
	// TODO: select RGB4 when the Alpha attribute is off, once a
	// no-alpha format common to GLES and desktop profiles is settled.
	b.color = createRenderbuffer(b.f, RGBA4.internalFormat(), 0, b.size)
	if !b.color.Valid() {
		return fmt.Errorf("%w (color, %v)", ErrRenderbufferAlloc, b.size)
	}
	if attrs.Depth {
		b.depth = createRenderbuffer(b.f, gl.DEPTH_COMPONENT16, 0, b.size)
		if !b.depth.Valid() {
			return fmt.Errorf("%w (depth, %v)", ErrRenderbufferAlloc, b.size)
		}
	}
	if attrs.Stencil {
		b.stencil = createRenderbuffer(b.f, gl.STENCIL_INDEX8, 0, b.size)
		if !b.stencil.Valid() {
			return fmt.Errorf("%w (stencil, %v)", ErrRenderbufferAlloc, b.size)
		}
	}
	b.fbo = b.f.CreateFramebuffer()
	if !b.fbo.Valid() {
		return ErrFramebufferAlloc
	}
	return b.attach()
}

// createRenderbuffer allocates one renderbuffer and sizes its storage. A
// samples count above zero selects multisample storage; nothing selects it
// yet (see New). It returns the zero handle on backend failure, so callers
// check.
func createRenderbuffer(f gl.Functions, format gl.Enum, samples int, size image.Point) gl.Renderbuffer {
	r := f.CreateRenderbuffer()
	if !r.Valid() {
		return r
	}
	f.BindRenderbuffer(gl.RENDERBUFFER, r)
	if samples > 0 {
		f.RenderbufferStorageMultisample(gl.RENDERBUFFER, samples, format, size.X, size.Y)
	} else {
		f.RenderbufferStorage(gl.RENDERBUFFER, format, size.X, size.Y)
	}
	return r
}

// attach binds the framebuffer and attaches every allocated renderbuffer
// to its attachment point. Reattaching the same handles leaves the
// framebuffer in the same state.
func (b *DrawBuffer) attach() error {
	b.f.BindFramebuffer(gl.FRAMEBUFFER, b.fbo)
	if b.color.Valid() {
		b.f.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, b.color)
	}
	if b.depth.Valid() {
		b.f.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, b.depth)
	}
	if b.stencil.Valid() {
		b.f.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.STENCIL_ATTACHMENT, gl.RENDERBUFFER, b.stencil)
	}
	if st := b.f.CheckFramebufferStatus(gl.FRAMEBUFFER); st != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("%w (%v), status: %#x", ErrFramebufferIncomplete, b.size, st)
	}
	if e := b.f.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("%w (%v), error: %#x", ErrFramebufferIncomplete, b.size, e)
	}
	return nil
}

// Size returns the buffer dimensions.
func (b *DrawBuffer) Size() image.Point {
	return b.size
}

// Framebuffer returns the framebuffer object. It remains valid until
// Release is called.
func (b *DrawBuffer) Framebuffer() gl.Framebuffer {
	return b.fbo
}

// Bind makes the framebuffer the target of subsequent drawing commands.
// The originating context must be current.
func (b *DrawBuffer) Bind() {
	b.f.BindFramebuffer(gl.FRAMEBUFFER, b.fbo)
}

// Release frees the framebuffer and its renderbuffers. GL object deletion
// is scoped to the current context, and deleting through the wrong one
// corrupts that context's objects instead, so Release makes the
// originating context current first. Calls after the first are no-ops.
func (b *DrawBuffer) Release() {
	if b.f == nil {
		return
	}
	if err := b.ctx.MakeCurrent(); err != nil {
		// The objects die with their context; they cannot be deleted
		// through another one.
		b.f = nil
		return
	}
	b.destroy()
	b.f = nil
}

func (b *DrawBuffer) destroy() {
	if b.fbo.Valid() {
		b.f.DeleteFramebuffer(b.fbo)
		b.fbo = gl.Framebuffer{}
	}
	if b.color.Valid() {
		b.f.DeleteRenderbuffer(b.color)
		b.color = gl.Renderbuffer{}
	}
	if b.depth.Valid() {
		b.f.DeleteRenderbuffer(b.depth)
		b.depth = gl.Renderbuffer{}
	}
	if b.stencil.Valid() {
		b.f.DeleteRenderbuffer(b.stencil)
		b.stencil = gl.Renderbuffer{}
	}
}
