// This file is part of Chromakey.
//
// Chromakey is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chromakey is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chromakey.  If not, see <https://www.gnu.org/licenses/>.

package renderer

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/chromakey/curated"
	"github.com/jetsetilly/chromakey/keying"
	"github.com/jetsetilly/chromakey/keying/shaders"
)

// Error patterns.
const (
	ContextUnavailable   = "renderer: context unavailable: %v"
	ShaderCompileFailure = "renderer: %s shader: %s"
	ProgramLinkFailure   = "renderer: program link: %s"
)

// the quad covering clip space. drawn as a triangle strip
var quad = [...]float32{
	-1, -1,
	1, -1,
	-1, 1,
	1, 1,
}

// values of the keying uniforms
type uniforms struct {
	dominant   int32
	similarity float32
	blend      float32
	despill    int32
}

func boolToInt32(v bool) int32 {
	if v {
		return 1
	}
	return 0
}

func uniformsFor(params keying.Params) uniforms {
	return uniforms{
		dominant:   int32(params.Dominant()),
		similarity: params.Similarity,
		blend:      params.Blend,
		despill:    boolToInt32(params.Despill),
	}
}

// Renderer owns the GPU resources for one keying session.
type Renderer struct {
	prg     program
	vao     uint32
	vbo     uint32
	texture uint32

	params keying.Params

	// dimensions of the texture. the texture is recreated when the dimensions
	// of an uploaded frame differ
	texWidth  int32
	texHeight int32

	// dimensions of the viewport
	width  int32
	height int32
}

// NewRenderer creates the GPU resources for params. The GL context must be
// current.
func NewRenderer(params keying.Params) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, curated.Errorf(ContextUnavailable, err)
	}
	if gl.GetString(gl.VERSION) == nil {
		return nil, curated.Errorf(ContextUnavailable, "no GL version")
	}

	rnd := &Renderer{
		params: params,
	}

	err := rnd.prg.create(string(shaders.KeyingVertexShader), string(shaders.KeyingFragShader))
	if err != nil {
		return nil, err
	}

	gl.GenVertexArrays(1, &rnd.vao)
	gl.BindVertexArray(rnd.vao)
	gl.GenBuffers(1, &rnd.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, rnd.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(&quad[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(uint32(rnd.prg.position))
	gl.VertexAttribPointerWithOffset(uint32(rnd.prg.position), 2, gl.FLOAT, false, 2*4, 0)
	gl.BindVertexArray(0)

	gl.GenTextures(1, &rnd.texture)
	gl.BindTexture(gl.TEXTURE_2D, rnd.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	// keying parameters do not change for the lifetime of the renderer
	u := uniformsFor(params)
	gl.UseProgram(rnd.prg.handle)
	gl.Uniform1i(rnd.prg.texture, 0)
	gl.Uniform1i(rnd.prg.dominant, u.dominant)
	gl.Uniform1f(rnd.prg.similarity, u.similarity)
	gl.Uniform1f(rnd.prg.blend, u.blend)
	gl.Uniform1i(rnd.prg.despill, u.despill)

	return rnd, nil
}

func (rnd *Renderer) String() string {
	return fmt.Sprintf("%s texture %dx%d", rnd.params, rnd.texWidth, rnd.texHeight)
}

// Destroy releases all GPU resources. The renderer cannot be used after it
// has been destroyed.
func (rnd *Renderer) Destroy() {
	if rnd.texture != 0 {
		gl.DeleteTextures(1, &rnd.texture)
		rnd.texture = 0
	}
	if rnd.vbo != 0 {
		gl.DeleteBuffers(1, &rnd.vbo)
		rnd.vbo = 0
	}
	if rnd.vao != 0 {
		gl.DeleteVertexArrays(1, &rnd.vao)
		rnd.vao = 0
	}
	rnd.prg.destroy()
}

// Viewport implements the scheduler.Renderer interface.
func (rnd *Renderer) Viewport(width int32, height int32) {
	rnd.width = width
	rnd.height = height
	gl.Viewport(0, 0, width, height)
}

// Upload implements the scheduler.Renderer interface.
func (rnd *Renderer) Upload(img *image.RGBA) {
	w := int32(img.Bounds().Dx())
	h := int32(img.Bounds().Dy())
	if w == 0 || h == 0 {
		return
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, rnd.texture)

	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride)/4)
	defer gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	if w != rnd.texWidth || h != rnd.texHeight {
		rnd.texWidth = w
		rnd.texHeight = h
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.RGBA, w, h, 0,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(img.Pix))
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0,
			0, 0, w, h,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(img.Pix))
	}
}

// Draw implements the scheduler.Renderer interface.
func (rnd *Renderer) Draw() {
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if rnd.texWidth == 0 || rnd.texHeight == 0 {
		return
	}

	gl.UseProgram(rnd.prg.handle)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, rnd.texture)
	gl.BindVertexArray(rnd.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, int32(len(quad)/2))
	gl.BindVertexArray(0)
}

// Screenshot reads the contents of the viewport. Should be called after
// Draw() and before the buffers are swapped.
func (rnd *Renderer) Screenshot() *image.NRGBA {
	if rnd.width == 0 || rnd.height == 0 {
		return nil
	}

	pix := make([]uint8, rnd.width*rnd.height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, rnd.width, rnd.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))

	return flip(pix, int(rnd.width), int(rnd.height))
}

// flip converts pixels read from the framebuffer, which has row zero at the
// bottom, to an image with row zero at the top
func flip(pix []uint8, width int, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	stride := width * 4
	for y := range height {
		copy(img.Pix[y*img.Stride:y*img.Stride+stride], pix[(height-1-y)*stride:(height-y)*stride])
	}
	return img
}
