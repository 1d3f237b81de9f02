package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func makeJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{212, 175, 55, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func makePNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{192, 192, 192, 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func TestThumbnailJPEG(t *testing.T) {
	thumb, err := Thumbnail(bytes.NewReader(makeJPEG(100, 100)))
	if err != nil {
		t.Fatalf("Thumbnail JPEG: %v", err)
	}
	if thumb.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", thumb.MIME)
	}
	if len(thumb.Data) == 0 {
		t.Error("expected non-empty data")
	}
}

func TestThumbnailPNGBecomesJPEG(t *testing.T) {
	thumb, err := Thumbnail(bytes.NewReader(makePNG(100, 100)))
	if err != nil {
		t.Fatalf("Thumbnail PNG: %v", err)
	}
	if thumb.MIME != "image/jpeg" {
		t.Errorf("output is always JPEG, got %s", thumb.MIME)
	}
}

func TestThumbnailShrinksLargeImage(t *testing.T) {
	thumb, err := Thumbnail(bytes.NewReader(makeJPEG(2000, 1000)))
	if err != nil {
		t.Fatalf("Thumbnail large image: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(thumb.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != ThumbSize {
		t.Errorf("expected longest side %d, got %d", ThumbSize, bounds.Dx())
	}
	// Aspect ratio preserved.
	if bounds.Dy() != ThumbSize/2 {
		t.Errorf("expected height %d, got %d", ThumbSize/2, bounds.Dy())
	}
}

func TestThumbnailNeverUpscales(t *testing.T) {
	thumb, err := Thumbnail(bytes.NewReader(makeJPEG(60, 40)))
	if err != nil {
		t.Fatalf("Thumbnail small image: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(thumb.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if img.Bounds().Dx() != 60 || img.Bounds().Dy() != 40 {
		t.Errorf("small image should pass through untouched, got %v", img.Bounds())
	}
}

func TestThumbnailRejectsNonImages(t *testing.T) {
	if _, err := Thumbnail(bytes.NewReader([]byte("<html>not an image</html>"))); err == nil {
		t.Error("expected error for non-image data")
	}
}

func TestThumbnailRejectsGIF(t *testing.T) {
	if _, err := Thumbnail(bytes.NewReader([]byte("GIF89a..."))); err == nil {
		t.Error("expected error for GIF input")
	}
}
