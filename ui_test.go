package main

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func TestClearImage(t *testing.T) {
	tests := []struct {
		name string
		rect image.Rectangle
	}{
		{"overlay", image.Rect(0, 0, overlaySize, overlaySize)},
		{"offset origin", image.Rect(-3, 5, 4, 9)},
		{"single pixel", image.Rect(0, 0, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(tt.rect)
			for i := range img.Pix {
				img.Pix[i] = 0xff
			}

			clearImage(img)

			for i, b := range img.Pix {
				if b != 0 {
					t.Fatalf("byte %d = %#x after clear, want 0", i, b)
				}
			}
		})
	}
}

func TestClearImageSubImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	clearImage(img.SubImage(image.Rect(1, 1, 3, 3)).(*image.RGBA))

	if got := img.RGBAAt(1, 1); got != (color.RGBA{}) {
		t.Errorf("inside pixel = %v, want transparent", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("outside pixel = %v, want untouched", got)
	}
}

func TestOverlayTexParams(t *testing.T) {
	want := map[uint32]int32{
		gl.TEXTURE_MIN_FILTER: gl.NEAREST,
		gl.TEXTURE_MAG_FILTER: gl.NEAREST,
		gl.TEXTURE_WRAP_S:     gl.CLAMP_TO_EDGE,
		gl.TEXTURE_WRAP_T:     gl.CLAMP_TO_EDGE,
	}

	if len(overlayTexParams) != len(want) {
		t.Fatalf("got %d parameters, want %d", len(overlayTexParams), len(want))
	}
	for _, p := range overlayTexParams {
		if v, ok := want[p.name]; !ok || v != p.value {
			t.Errorf("parameter %#x = %#x, want %#x", p.name, p.value, v)
		}
	}
}
