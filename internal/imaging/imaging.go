// Package imaging prepares upstream catalog photos for card-sized display:
// sniff the real format, shrink to a thumbnail bounding box, re-encode.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"

	"golang.org/x/image/draw"
)

// ThumbSize is the bounding box (longest side) for card thumbnails.
const ThumbSize = 512

// JPEGQuality is the compression quality for thumbnail output.
const JPEGQuality = 80

// allowedMIME lists the accepted upstream image formats.
var allowedMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// Thumb is a processed thumbnail ready to serve.
type Thumb struct {
	Data []byte
	MIME string
}

// Thumbnail reads an upstream image, validates the format by sniffing bytes
// (never trusting upstream headers), shrinks it into the ThumbSize bounding
// box and re-encodes as JPEG. Images already within bounds are re-encoded
// without resizing.
func Thumbnail(r io.Reader) (*Thumb, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading image data: %w", err)
	}

	detected := http.DetectContentType(data)
	if !allowedMIME[detected] {
		return nil, fmt.Errorf("unsupported image format: %s (only JPEG and PNG accepted)", detected)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	img = shrink(img, ThumbSize)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encoding thumbnail: %w", err)
	}

	return &Thumb{Data: buf.Bytes(), MIME: "image/jpeg"}, nil
}

// shrink scales the image down so its longest side is at most maxDim,
// preserving aspect ratio. Smaller images pass through untouched.
func shrink(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	longest := w
	if h > longest {
		longest = h
	}
	if longest <= maxDim {
		return img
	}

	scale := float64(maxDim) / float64(longest)
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

func init() {
	image.RegisterFormat("jpeg", "\xff\xd8", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "\x89PNG", png.Decode, png.DecodeConfig)
}
