// SPDX-License-Identifier: Unlicense OR MIT

// Package gl defines the subset of the OpenGL API consumed by package
// offscreen, as an interface over typed object handles. Implementations
// exist for any GL binding; package glwin implements it with the go-gl
// bindings.
package gl

type Enum uint

const (
	COLOR_ATTACHMENT0    = 0x8ce0
	COLOR_BUFFER_BIT     = 0x4000
	DEPTH_ATTACHMENT     = 0x8d00
	DEPTH_BUFFER_BIT     = 0x100
	DEPTH_COMPONENT16    = 0x81a5
	EXTENSIONS           = 0x1f03
	FALSE                = 0
	FRAMEBUFFER          = 0x8d40
	FRAMEBUFFER_BINDING  = 0x8ca6
	FRAMEBUFFER_COMPLETE = 0x8cd5
	MAX_SAMPLES          = 0x8d57
	NO_ERROR             = 0x0
	RENDERBUFFER         = 0x8d41
	RENDERBUFFER_BINDING = 0x8ca7
	RENDERBUFFER_HEIGHT  = 0x8d43
	RENDERBUFFER_WIDTH   = 0x8d42
	RGB4                 = 0x804f
	RGBA                 = 0x1908
	RGBA4                = 0x8056
	STENCIL_ATTACHMENT   = 0x8d20
	STENCIL_BUFFER_BIT   = 0x400
	STENCIL_INDEX8       = 0x8d48
	TRUE                 = 1
	UNSIGNED_BYTE        = 0x1401
	VERSION              = 0x1f02
)

// Functions is the GL backend. Implementations are not safe for
// concurrent use, and every call assumes the owning context is current on
// the calling thread.
type Functions interface {
	BindFramebuffer(target Enum, f Framebuffer)
	BindRenderbuffer(target Enum, r Renderbuffer)
	CheckFramebufferStatus(target Enum) Enum
	Clear(mask Enum)
	ClearColor(red, green, blue, alpha float32)
	CreateFramebuffer() Framebuffer
	CreateRenderbuffer() Renderbuffer
	DeleteFramebuffer(f Framebuffer)
	DeleteRenderbuffer(r Renderbuffer)
	FramebufferRenderbuffer(target, attachment, renderbuffertarget Enum, r Renderbuffer)
	GetBinding(pname Enum) Object
	GetError() Enum
	GetInteger(pname Enum) int
	GetString(pname Enum) string
	ReadPixels(x, y, width, height int, format, ty Enum, data []byte)
	RenderbufferStorage(target, internalformat Enum, width, height int)
	RenderbufferStorageMultisample(target Enum, samples int, internalformat Enum, width, height int)
	Viewport(x, y, width, height int)
}
