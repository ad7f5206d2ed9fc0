// Package imaging turns an uploaded garment photo into a background-free PNG.
package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"strings"

	_ "golang.org/x/image/webp" // WebP decoder
)

// ErrNotImage is returned when an upload does not declare an image content type.
var ErrNotImage = errors.New("not an image upload")

// BackgroundRemover cuts the subject out of a PNG and returns a PNG with a
// transparent background.
type BackgroundRemover interface {
	RemoveBackground(ctx context.Context, pngData []byte) ([]byte, error)
}

// Processed is a background-removed image in both representations the
// pipeline needs.
type Processed struct {
	Image  *image.NRGBA
	PNG    []byte
	Base64 string
}

type Preprocessor struct {
	remover BackgroundRemover
}

func NewPreprocessor(remover BackgroundRemover) *Preprocessor {
	return &Preprocessor{remover: remover}
}

// IsImageContentType reports whether a declared content type is an image type.
func IsImageContentType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}

// Process decodes raw, normalizes it to NRGBA, removes the background and
// re-encodes the result as PNG. The removal call runs on its own goroutine so
// a cancelled ctx releases the caller even if the remover is still busy.
func (p *Preprocessor) Process(ctx context.Context, raw []byte, contentType string) (*Processed, error) {
	if !IsImageContentType(contentType) {
		return nil, ErrNotImage
	}

	src, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	input, err := EncodePNG(src)
	if err != nil {
		return nil, err
	}

	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		data, err := p.remover.RemoveBackground(ctx, input)
		done <- result{data, err}
	}()

	var removed []byte
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("background removal: %w", ctx.Err())
	case r := <-done:
		if r.err != nil {
			return nil, fmt.Errorf("background removal: %w", r.err)
		}
		removed = r.data
	}

	out, err := Decode(removed)
	if err != nil {
		return nil, fmt.Errorf("background removal output: %w", err)
	}
	encoded, err := EncodePNG(out)
	if err != nil {
		return nil, err
	}

	return &Processed{
		Image:  out,
		PNG:    encoded,
		Base64: base64.StdEncoding.EncodeToString(encoded),
	}, nil
}

// Decode reads a JPEG, PNG, GIF or WebP image and converts it to NRGBA so
// every downstream consumer sees an alpha channel.
func Decode(data []byte) (*image.NRGBA, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("decode image: empty data")
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return toNRGBA(img), nil
}

// DecodeBase64 decodes a base64 image (optionally a data URL) into a
// normalized PNG ready to be sent to the vision model.
func DecodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		if i := strings.IndexByte(s, ','); i >= 0 {
			s = s[i+1:]
		}
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode base64 image: %w", err)
	}
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return EncodePNG(img)
}

func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
