package receipt

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"
)

// validPNG encodes a small in-memory raster so intake tests do not depend on
// fixture files.
func validPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeImage(t *testing.T) {
	data := validPNG(t)

	img, err := DecodeImage(data, "image/png")
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}

	if img.Raster == nil {
		t.Error("expected decoded raster, got nil")
	}
	if img.MIMEType != "image/png" {
		t.Errorf("MIMEType = %q, want image/png", img.MIMEType)
	}
	if !bytes.Equal(img.Data, data) {
		t.Error("expected original bytes to be retained unchanged")
	}
}

func TestDecodeImage_UnsupportedMediaType(t *testing.T) {
	tests := []struct {
		name      string
		mediaType string
	}{
		{"text", "text/plain"},
		{"pdf", "application/pdf"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Valid image bytes: the declared type alone must reject.
			_, err := DecodeImage(validPNG(t), tt.mediaType)
			if !errors.Is(err, ErrUnsupportedMediaType) {
				t.Errorf("error = %v, want ErrUnsupportedMediaType", err)
			}
		})
	}
}

func TestDecodeImage_DecodeError(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"not an image", []byte("definitely not pixels")},
		{"empty payload", nil},
		{"truncated png", validPNG(t)[:8]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeImage(tt.data, "image/png")
			if err == nil {
				t.Fatal("DecodeImage succeeded, want error")
			}
			var decodeErr *ImageDecodeError
			if !errors.As(err, &decodeErr) {
				t.Errorf("error is %T, want *ImageDecodeError", err)
			}
		})
	}
}
