// SPDX-License-Identifier: Unlicense OR MIT

package offscreen

import (
	"testing"

	"github.com/go-gfx/offscreen/gl"
)

type testContext struct {
	attrs          Attributes
	caps           Caps
	f              *testFuncs
	makeCurrentErr error
	activations    int
}

func newTestContext(t *testing.T, attrs Attributes, caps Caps) *testContext {
	return &testContext{
		attrs: attrs,
		caps:  caps,
		f:     newTestFuncs(t),
	}
}

func (c *testContext) MakeCurrent() error {
	if c.makeCurrentErr != nil {
		return c.makeCurrentErr
	}
	c.activations++
	return nil
}

func (c *testContext) Attributes() Attributes {
	return c.attrs
}

func (c *testContext) Caps() Caps {
	return c.caps
}

func (c *testContext) Functions() gl.Functions {
	return c.f
}

type rbStorage struct {
	format  gl.Enum
	samples int
	width   int
	height  int
}

// testFuncs is an in-memory gl.Functions recording object lifecycles.
type testFuncs struct {
	t *testing.T

	calls    int
	nextName uint

	// Fault injection.
	failRenderbufferAt int     // 1-based creation index returning the zero handle
	failFramebuffer    bool    // CreateFramebuffer returns the zero handle
	status             gl.Enum // CheckFramebufferStatus override
	glErr              gl.Enum // returned once by GetError

	renderbuffersCreated int
	boundFBO             gl.Framebuffer
	boundRB              gl.Renderbuffer
	storages             map[uint]rbStorage
	attachments          map[gl.Enum]uint
	deletedRBs           []uint
	deletedFBs           []uint
}

func newTestFuncs(t *testing.T) *testFuncs {
	return &testFuncs{
		t:           t,
		nextName:    1,
		storages:    make(map[uint]rbStorage),
		attachments: make(map[gl.Enum]uint),
	}
}

func (f *testFuncs) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	f.calls++
	f.boundFBO = fb
}

func (f *testFuncs) BindRenderbuffer(target gl.Enum, rb gl.Renderbuffer) {
	f.calls++
	f.boundRB = rb
}

func (f *testFuncs) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	f.calls++
	if f.status != 0 {
		return f.status
	}
	return gl.FRAMEBUFFER_COMPLETE
}

func (f *testFuncs) Clear(mask gl.Enum) {
	f.calls++
}

func (f *testFuncs) ClearColor(red, green, blue, alpha float32) {
	f.calls++
}

func (f *testFuncs) CreateFramebuffer() gl.Framebuffer {
	f.calls++
	if f.failFramebuffer {
		return gl.Framebuffer{}
	}
	name := f.nextName
	f.nextName++
	return gl.Framebuffer{V: name}
}

func (f *testFuncs) CreateRenderbuffer() gl.Renderbuffer {
	f.calls++
	f.renderbuffersCreated++
	if f.renderbuffersCreated == f.failRenderbufferAt {
		return gl.Renderbuffer{}
	}
	name := f.nextName
	f.nextName++
	return gl.Renderbuffer{V: name}
}

func (f *testFuncs) DeleteFramebuffer(fb gl.Framebuffer) {
	f.calls++
	if fb.V == 0 {
		f.t.Error("deleted the zero framebuffer handle")
		return
	}
	f.deletedFBs = append(f.deletedFBs, fb.V)
}

func (f *testFuncs) DeleteRenderbuffer(rb gl.Renderbuffer) {
	f.calls++
	if rb.V == 0 {
		f.t.Error("deleted the zero renderbuffer handle")
		return
	}
	f.deletedRBs = append(f.deletedRBs, rb.V)
}

func (f *testFuncs) FramebufferRenderbuffer(target, attachment, renderbuffertarget gl.Enum, rb gl.Renderbuffer) {
	f.calls++
	if !f.boundFBO.Valid() {
		f.t.Error("attachment issued with no framebuffer bound")
		return
	}
	f.attachments[attachment] = rb.V
}

func (f *testFuncs) GetBinding(pname gl.Enum) gl.Object {
	f.calls++
	switch pname {
	case gl.FRAMEBUFFER_BINDING:
		return gl.Object{V: f.boundFBO.V}
	case gl.RENDERBUFFER_BINDING:
		return gl.Object{V: f.boundRB.V}
	}
	return gl.Object{}
}

func (f *testFuncs) GetError() gl.Enum {
	f.calls++
	e := f.glErr
	f.glErr = gl.NO_ERROR
	return e
}

func (f *testFuncs) GetInteger(pname gl.Enum) int {
	f.calls++
	return 0
}

func (f *testFuncs) GetString(pname gl.Enum) string {
	f.calls++
	return ""
}

func (f *testFuncs) ReadPixels(x, y, width, height int, format, ty gl.Enum, data []byte) {
	f.calls++
}

func (f *testFuncs) RenderbufferStorage(target, internalformat gl.Enum, width, height int) {
	f.calls++
	if !f.boundRB.Valid() {
		f.t.Error("storage sized with no renderbuffer bound")
		return
	}
	f.storages[f.boundRB.V] = rbStorage{format: internalformat, width: width, height: height}
}

func (f *testFuncs) RenderbufferStorageMultisample(target gl.Enum, samples int, internalformat gl.Enum, width, height int) {
	f.calls++
	if !f.boundRB.Valid() {
		f.t.Error("storage sized with no renderbuffer bound")
		return
	}
	f.storages[f.boundRB.V] = rbStorage{format: internalformat, samples: samples, width: width, height: height}
}

func (f *testFuncs) Viewport(x, y, width, height int) {
	f.calls++
}
