// Package imaging normalizes uploaded business logos.
package imaging

import (
	"bytes"
	"errors"
	"image"
	stddraw "image/draw"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	xwebp "golang.org/x/image/webp"
)

const (
	MaxLogoSide  = 512
	MaxLogoBytes = 5 << 20
	logoQuality  = 80

	// MaxLogoPixels caps the decoded size; a few MB of compressed input
	// can otherwise claim a multi-GB pixel buffer.
	MaxLogoPixels = 40_000_000
)

var (
	ErrEmptyImage    = errors.New("empty image")
	ErrImageTooLarge = errors.New("image too large")
	ErrUnsupported   = errors.New("unsupported image format")
)

// Logo decodes a jpeg, png or webp upload, fits it inside
// MaxLogoSide x MaxLogoSide and re-encodes it as WebP.
func Logo(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyImage
	}
	if len(raw) > MaxLogoBytes {
		return nil, ErrImageTooLarge
	}

	src, err := decode(raw)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := webp.Encode(&out, fit(src, MaxLogoSide), &webp.Options{Quality: logoQuality}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// decodeConfig reads only the header.
func decodeConfig(raw []byte) (image.Config, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err == nil {
		return cfg, nil
	}
	if cfg, webpErr := xwebp.DecodeConfig(bytes.NewReader(raw)); webpErr == nil {
		return cfg, nil
	}
	return image.Config{}, ErrUnsupported
}

func decode(raw []byte) (image.Image, error) {
	cfg, err := decodeConfig(raw)
	if err != nil {
		return nil, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrUnsupported
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxLogoPixels {
		return nil, ErrImageTooLarge
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err == nil {
		return img, nil
	}
	if decoded, webpErr := xwebp.Decode(bytes.NewReader(raw)); webpErr == nil {
		return decoded, nil
	}
	return nil, ErrUnsupported
}

// fit scales src down so neither side exceeds max. Smaller images are
// only copied.
func fit(src image.Image, max int) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if w <= max && h <= max {
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		stddraw.Draw(dst, dst.Bounds(), src, b.Min, stddraw.Src)
		return dst
	}

	if w >= h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
