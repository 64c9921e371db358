package photo

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	ContentType = "image/webp"

	DefaultSize    = 256
	DefaultQuality = 80

	// limite do upload bruto
	MaxUploadBytes = 8 << 20

	// limite de largura/altura antes de decodificar os pixels
	MaxDimension = 4096
)

var ErrInvalidImage = errors.New("invalid image")

// Thumbnail decodifica jpeg/png/webp, recorta o centro em quadrado,
// redimensiona para size×size e codifica em WebP
func Thumbnail(raw []byte, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 ||
		cfg.Width > MaxDimension || cfg.Height > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidImage, cfg.Width, cfg.Height)
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	b := src.Bounds()
	side := min(b.Dx(), b.Dy())
	if side == 0 {
		return nil, ErrInvalidImage
	}
	crop := image.Rect(0, 0, side, side).Add(image.Pt(
		b.Min.X+(b.Dx()-side)/2,
		b.Min.Y+(b.Dy()-side)/2,
	))

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Over, nil)

	var out bytes.Buffer
	if err := webp.Encode(&out, dst, &webp.Options{Quality: DefaultQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return out.Bytes(), nil
}
