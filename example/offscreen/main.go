// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux || darwin || windows || freebsd

// Command offscreen renders into an offscreen draw buffer and writes the
// result to offscreen.png.
package main

import (
	"image"
	"image/png"
	"log"
	"os"
	"runtime"

	"github.com/go-gfx/offscreen"
	"github.com/go-gfx/offscreen/gl"
	"github.com/go-gfx/offscreen/glwin"
)

func main() {
	// Required by the OpenGL threading model.
	runtime.LockOSThread()

	ctx, err := glwin.NewContext(offscreen.Attributes{Alpha: true, Depth: true})
	if err != nil {
		log.Fatal(err)
	}
	defer ctx.Release()

	size := image.Point{X: 256, Y: 256}
	buf, err := offscreen.New(ctx, size)
	if err != nil {
		log.Fatal(err)
	}
	defer buf.Release()

	f := ctx.Functions()
	buf.Bind()
	f.Viewport(0, 0, size.X, size.Y)
	f.ClearColor(0.2, 0.55, 0.75, 1)
	f.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	img := image.NewRGBA(image.Rectangle{Max: size})
	f.ReadPixels(0, 0, size.X, size.Y, gl.RGBA, gl.UNSIGNED_BYTE, img.Pix)

	out, err := os.Create("offscreen.png")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		log.Fatal(err)
	}
}
