package utils

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/tiff"
)

// Supported avatar MIME types.
const (
	MIMETypeJPEG = "image/jpeg"
	MIMETypePNG  = "image/png"
	MIMETypeTIFF = "image/tiff"
)

// ErrUnsupportedImage is returned when a payload is not a decodable image
// of a supported type.
var ErrUnsupportedImage = errors.New("payload is not a supported image")

var imageHeaders = map[string][]string{
	MIMETypeJPEG: {"\xFF\xD8"},
	MIMETypePNG:  {"\x89\x50\x4E\x47\x0D\x0A\x1A\x0A"},
	MIMETypeTIFF: {"\x49\x49\x2A\x00", "\x4D\x4D\x00\x2A"},
}

var imageDecoders = map[string]func(io.Reader) (image.Image, error){
	MIMETypeJPEG: jpeg.Decode,
	MIMETypePNG:  png.Decode,
	MIMETypeTIFF: tiff.Decode,
}

// SniffImage inspects the payload's magic bytes and verifies that it fully
// decodes as an image of the detected type.
//
// Returns the detected MIME type, or ErrUnsupportedImage if the header is
// unknown or the payload fails to decode.
func SniffImage(data []byte) (string, error) {
	mimeType := ""
	for candidate, headers := range imageHeaders {
		for _, header := range headers {
			if bytes.HasPrefix(data, []byte(header)) {
				mimeType = candidate
			}
		}
	}
	if mimeType == "" {
		return "", ErrUnsupportedImage
	}

	if _, err := imageDecoders[mimeType](bytes.NewReader(data)); err != nil {
		return "", ErrUnsupportedImage
	}

	return mimeType, nil
}
