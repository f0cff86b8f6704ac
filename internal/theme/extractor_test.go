package theme

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// bandedImage builds a test cover with three vertical color bands; the
// first band takes 60% of the width so its color dominates.
func bandedImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var c color.RGBA
			switch {
			case x < w*6/10:
				c = color.RGBA{R: 200, G: 30, B: 30, A: 255}
			case x < w*8/10:
				c = color.RGBA{R: 30, G: 200, B: 30, A: 255}
			default:
				c = color.RGBA{R: 30, G: 30, B: 200, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestExtract(t *testing.T) {
	p, err := Extract(bandedImage(120, 120))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The widest band must rank first
	if p[0].R <= p[0].G || p[0].R <= p[0].B {
		t.Errorf("expected dominant color to be red-leaning, got %s", p[0].Hex())
	}

	// All three entries must be distinct
	if p[0] == p[1] || p[1] == p[2] || p[0] == p[2] {
		t.Errorf("expected 3 distinct colors, got %s %s %s", p[0].Hex(), p[1].Hex(), p[2].Hex())
	}
}

func TestExtract_InvalidInput(t *testing.T) {
	if _, err := Extract(nil); err == nil {
		t.Error("expected error for nil image")
	}
	if _, err := Extract(image.NewRGBA(image.Rect(0, 0, 0, 0))); err == nil {
		t.Error("expected error for zero-sized image")
	}
}

func TestExtractBytes(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, bandedImage(80, 80)); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}

	if _, err := ExtractBytes(buf.Bytes()); err != nil {
		t.Errorf("unexpected error for valid png: %v", err)
	}

	if _, err := ExtractBytes([]byte("definitely-not-an-image")); err == nil {
		t.Error("expected error for undecodable data")
	}
}
