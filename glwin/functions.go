// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux || darwin || windows || freebsd

package glwin

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	ogl "github.com/go-gfx/offscreen/gl"
)

// glFunctions implements ogl.Functions with the go-gl bindings.
type glFunctions struct{}

func (f *glFunctions) BindFramebuffer(target ogl.Enum, fb ogl.Framebuffer) {
	gl.BindFramebuffer(uint32(target), uint32(fb.V))
}

func (f *glFunctions) BindRenderbuffer(target ogl.Enum, rb ogl.Renderbuffer) {
	gl.BindRenderbuffer(uint32(target), uint32(rb.V))
}

func (f *glFunctions) CheckFramebufferStatus(target ogl.Enum) ogl.Enum {
	return ogl.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (f *glFunctions) Clear(mask ogl.Enum) {
	gl.Clear(uint32(mask))
}

func (f *glFunctions) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (f *glFunctions) CreateFramebuffer() ogl.Framebuffer {
	var fb uint32
	gl.GenFramebuffers(1, &fb)
	return ogl.Framebuffer{V: uint(fb)}
}

func (f *glFunctions) CreateRenderbuffer() ogl.Renderbuffer {
	var rb uint32
	gl.GenRenderbuffers(1, &rb)
	return ogl.Renderbuffer{V: uint(rb)}
}

func (f *glFunctions) DeleteFramebuffer(v ogl.Framebuffer) {
	fb := uint32(v.V)
	gl.DeleteFramebuffers(1, &fb)
}

func (f *glFunctions) DeleteRenderbuffer(v ogl.Renderbuffer) {
	rb := uint32(v.V)
	gl.DeleteRenderbuffers(1, &rb)
}

func (f *glFunctions) FramebufferRenderbuffer(target, attachment, renderbuffertarget ogl.Enum, rb ogl.Renderbuffer) {
	gl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(renderbuffertarget), uint32(rb.V))
}

func (f *glFunctions) GetBinding(pname ogl.Enum) ogl.Object {
	var o int32
	gl.GetIntegerv(uint32(pname), &o)
	return ogl.Object{V: uint(o)}
}

func (f *glFunctions) GetError() ogl.Enum {
	return ogl.Enum(gl.GetError())
}

func (f *glFunctions) GetInteger(pname ogl.Enum) int {
	var p int32
	gl.GetIntegerv(uint32(pname), &p)
	return int(p)
}

func (f *glFunctions) GetString(pname ogl.Enum) string {
	return gl.GoStr(gl.GetString(uint32(pname)))
}

func (f *glFunctions) ReadPixels(x, y, width, height int, format, ty ogl.Enum, data []byte) {
	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), unsafe.Pointer(&data[0]))
}

func (f *glFunctions) RenderbufferStorage(target, internalformat ogl.Enum, width, height int) {
	gl.RenderbufferStorage(uint32(target), uint32(internalformat), int32(width), int32(height))
}

func (f *glFunctions) RenderbufferStorageMultisample(target ogl.Enum, samples int, internalformat ogl.Enum, width, height int) {
	gl.RenderbufferStorageMultisample(uint32(target), int32(samples), uint32(internalformat), int32(width), int32(height))
}

func (f *glFunctions) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}
