package main

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/freetype"
	"golang.org/x/image/math/fixed"
)

const overlaySize = 512

// overlay draws debug text rasterized on the CPU into a single texture.
type overlay struct {
	program uint32
	vao     uint32
	vbo     uint32
	texture uint32

	ctx      *freetype.Context
	dst      *image.RGBA
	fontSize float64

	projectionLoc int32
	modelLoc      int32
}

// Sets up freetype context and canvas with desired font
func loadFont(pathToFont string, fontSize float64) (*freetype.Context, *image.RGBA, error) {
	fontData, err := os.ReadFile(pathToFont)
	if err != nil {
		return nil, nil, fmt.Errorf("read font: %w", err)
	}

	font, err := freetype.ParseFont(fontData)
	if err != nil {
		return nil, nil, fmt.Errorf("parse font %s: %w", pathToFont, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, overlaySize, overlaySize))
	clearImage(dst)
	ctx := freetype.NewContext()
	ctx.SetFont(font)
	ctx.SetFontSize(fontSize)
	ctx.SetDst(dst)
	ctx.SetClip(dst.Bounds())
	ctx.SetSrc(image.White)
	ctx.SetHinting(2) // sharp text
	return ctx, dst, nil
}

func newOverlay(fontPath string, fontSize float64, vertexPath, fragmentPath string) (*overlay, error) {
	ctx, dst, err := loadFont(fontPath, fontSize)
	if err != nil {
		return nil, err
	}

	prog, err := newProgram(vertexPath, fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("overlay program: %w", err)
	}

	o := &overlay{
		program:       prog,
		ctx:           ctx,
		dst:           dst,
		fontSize:      fontSize,
		projectionLoc: uniformLocation(prog, "projection"),
		modelLoc:      uniformLocation(prog, "model"),
	}
	o.initTextVAO()
	o.texture = uploadTextTexture(dst)

	gl.UseProgram(prog)
	gl.Uniform1i(uniformLocation(prog, "TexCoord"), 0)
	return o, nil
}

func (o *overlay) initTextVAO() {
	vertices := []float32{
		0.0, 1.0, 0.0, 0.0, 1.0, // Bottom-left
		0.0, 0.0, 0.0, 0.0, 0.0, // Top-left
		1.0, 0.0, 0.0, 1.0, 0.0, // Top-right

		0.0, 1.0, 0.0, 0.0, 1.0, // Bottom-left
		1.0, 0.0, 0.0, 1.0, 0.0, // Top-right
		1.0, 1.0, 0.0, 1.0, 1.0, // Bottom-right
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)

	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 5*4, nil)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 5*4, uintptr(3*4))
	gl.BindVertexArray(0)
}

// overlayTexParams keeps the glyphs crisp and stops the quad from sampling
// the opposite edge.
var overlayTexParams = []struct {
	name  uint32
	value int32
}{
	{gl.TEXTURE_MIN_FILTER, gl.NEAREST},
	{gl.TEXTURE_MAG_FILTER, gl.NEAREST},
	{gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE},
	{gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE},
}

// uploadTextTexture allocates the overlay texture sized to img and fills it.
// Later frames only replace its contents with TexSubImage2D.
func uploadTextTexture(img *image.RGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	for _, p := range overlayTexParams {
		gl.TexParameteri(gl.TEXTURE_2D, p.name, p.value)
	}
	return tex
}

// clearImage makes every pixel of img fully transparent.
func clearImage(img *image.RGBA) {
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// lineOrigin is the baseline of the n-th line of text.
func lineOrigin(ctx *freetype.Context, fontSize float64, n int) fixed.Point26_6 {
	lineHeight := ctx.PointToFixed(fontSize * 1.25)
	return fixed.Point26_6{
		X: fixed.I(4),
		Y: lineHeight * fixed.Int26_6(n+1),
	}
}

// setText redraws the overlay texture with one string per line.
func (o *overlay) setText(lines []string) error {
	clearImage(o.dst)
	for i, line := range lines {
		if _, err := o.ctx.DrawString(line, lineOrigin(o.ctx, o.fontSize, i)); err != nil {
			return fmt.Errorf("draw overlay text: %w", err)
		}
	}

	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.TexSubImage2D(
		gl.TEXTURE_2D,
		0,
		0, 0,
		int32(o.dst.Rect.Size().X),
		int32(o.dst.Rect.Size().Y),
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(o.dst.Pix),
	)
	return nil
}

func (o *overlay) draw(width, height int) {
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(o.program)

	orthographicProjection := mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
	gl.UniformMatrix4fv(o.projectionLoc, 1, false, &orthographicProjection[0])

	model := mgl32.Scale3D(overlaySize, overlaySize, 1)
	gl.UniformMatrix4fv(o.modelLoc, 1, false, &model[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
}

func (o *overlay) delete() {
	gl.DeleteTextures(1, &o.texture)
	gl.DeleteVertexArrays(1, &o.vao)
	gl.DeleteBuffers(1, &o.vbo)
	gl.DeleteProgram(o.program)
}
