package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, solid(w, h, color.RGBA{255, 0, 0, 255}), &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solid(w, h, color.RGBA{0, 0, 255, 255})))
	return buf.Bytes()
}

func decodedSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestProcessFormats(t *testing.T) {
	tests := []struct {
		name string
		data func(t *testing.T) []byte
	}{
		{"jpeg", func(t *testing.T) []byte { return encodeJPEG(t, 100, 80) }},
		{"png", func(t *testing.T) []byte { return encodePNG(t, 100, 80) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Process(bytes.NewReader(tt.data(t)))
			require.NoError(t, err)
			assert.Equal(t, "image/jpeg", result.MIME, "output is always JPEG")
			assert.Equal(t, 100, result.Width)
			assert.Equal(t, 80, result.Height)

			w, h := decodedSize(t, result.Data)
			assert.Equal(t, 100, w)
			assert.Equal(t, 80, h)
		})
	}
}

func TestProcessDownscaleKeepsAspectRatio(t *testing.T) {
	result, err := Process(bytes.NewReader(encodeJPEG(t, 3200, 1600)))
	require.NoError(t, err)

	w, h := decodedSize(t, result.Data)
	assert.Equal(t, MaxDimension, w)
	assert.Equal(t, MaxDimension/2, h)
}

func TestProcessDownscalePortrait(t *testing.T) {
	result, err := Process(bytes.NewReader(encodePNG(t, 900, 2000)))
	require.NoError(t, err)

	w, h := decodedSize(t, result.Data)
	assert.Equal(t, 720, w)
	assert.Equal(t, MaxDimension, h)
}

func TestProcessRejectsUnsupported(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"text", []byte("not an image")},
		{"gif", []byte("GIF89a...")},
		{"truncated png", encodePNG(t, 10, 10)[:20]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Process(bytes.NewReader(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestProcessRejectsOversizedUpload(t *testing.T) {
	data := make([]byte, MaxUploadSize+10)
	copy(data, encodeJPEG(t, 10, 10))

	_, err := Process(bytes.NewReader(data))
	assert.ErrorContains(t, err, "larger than")
}
