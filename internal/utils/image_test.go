package utils

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/tiff"
)

func encodeTestImage(t *testing.T, encode func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	require.NoError(t, encode(&buf, img))
	return buf.Bytes()
}

func TestSniffImage_TableTest(t *testing.T) {
	pngPayload := encodeTestImage(t, func(buf *bytes.Buffer, img image.Image) error {
		return png.Encode(buf, img)
	})
	jpegPayload := encodeTestImage(t, func(buf *bytes.Buffer, img image.Image) error {
		return jpeg.Encode(buf, img, nil)
	})
	tiffPayload := encodeTestImage(t, func(buf *bytes.Buffer, img image.Image) error {
		return tiff.Encode(buf, img, nil)
	})

	tests := []struct {
		name     string
		payload  []byte
		wantMIME string
		wantErr  bool
	}{
		{name: "png", payload: pngPayload, wantMIME: MIMETypePNG},
		{name: "jpeg", payload: jpegPayload, wantMIME: MIMETypeJPEG},
		{name: "tiff", payload: tiffPayload, wantMIME: MIMETypeTIFF},
		{name: "empty payload", payload: nil, wantErr: true},
		{name: "text payload", payload: []byte("just some text"), wantErr: true},
		{name: "png header with garbage body", payload: []byte("\x89PNG\r\n\x1a\ngarbage"), wantErr: true},
		{name: "gif is not supported", payload: []byte("GIF89a..."), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mimeType, err := SniffImage(tt.payload)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedImage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMIME, mimeType)
		})
	}
}
