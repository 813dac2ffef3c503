package receipt

import (
	"bytes"
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

// Image is a validated upload ready for the model call. Raster holds the
// decoded pixels and Data the original bytes: the inference request sends the
// original payload inline, so decoding exists to prove the bytes are a real
// image, not to transform them. No resizing or EXIF handling happens here.
type Image struct {
	Raster   image.Image
	MIMEType string
	Data     []byte
}

// DecodeImage checks the declared media type and decodes the payload. The
// media type check runs first so a non-image upload is rejected without
// touching the bytes.
func DecodeImage(data []byte, mediaType string) (*Image, error) {
	if !strings.HasPrefix(mediaType, "image/") {
		return nil, ErrUnsupportedMediaType
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &ImageDecodeError{Err: err}
	}

	return &Image{Raster: img, MIMEType: mediaType, Data: data}, nil
}
