// Package theme derives the player's accent color theme from album
// artwork.
package theme

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // GIF format support
	_ "image/jpeg" // JPEG format support
	_ "image/png"  // PNG format support
	"sort"

	"github.com/EdlinOrg/prominentcolor"
	"github.com/disintegration/imaging"

	"github.com/itsyourradio/radiobar/internal/domain"
)

// paletteSize is fixed: the surface gradient consumes exactly 3 colors
const paletteSize = 3

// maxExtractDim bounds the k-means input so huge covers stay cheap
const maxExtractDim = 256

// Extract produces the ordered palette of the 3 dominant colors of a
// decoded image, most prominent first. Pure and synchronous. Any
// internal failure is reported as an error; the caller keeps its
// previous palette in that case.
func Extract(img image.Image) (domain.Palette, error) {
	var p domain.Palette

	if img == nil {
		return p, fmt.Errorf("nil image")
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return p, fmt.Errorf("invalid image dimensions: %dx%d", bounds.Dx(), bounds.Dy())
	}

	scaled := imaging.Fit(img, maxExtractDim, maxExtractDim, imaging.Lanczos)

	items, err := prominentcolor.KmeansWithAll(paletteSize, scaled,
		prominentcolor.ArgumentDefault, prominentcolor.DefaultSize, nil)
	if err != nil {
		return p, fmt.Errorf("color extraction failed: %w", err)
	}
	if len(items) < paletteSize {
		return p, fmt.Errorf("extraction yielded %d colors, need %d", len(items), paletteSize)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Cnt > items[j].Cnt })

	for i := 0; i < paletteSize; i++ {
		p[i] = domain.RGB{
			R: uint8(items[i].Color.R),
			G: uint8(items[i].Color.G),
			B: uint8(items[i].Color.B),
		}
	}
	return p, nil
}

// ExtractBytes decodes raw image data and extracts its palette.
func ExtractBytes(data []byte) (domain.Palette, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return domain.Palette{}, fmt.Errorf("failed to decode image: %w", err)
	}
	return Extract(img)
}
