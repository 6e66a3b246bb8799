package services

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 251), G: uint8(y % 251), B: 130, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalizeKeepsSmallImagesByteIdentical(t *testing.T) {
	original := encodeTestPNG(t, 1920, 1080)

	normalized, mimeType, err := NormalizeForProvider(original, "image/png")

	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, original, normalized)
}

func TestNormalizeDownscalesWideImage(t *testing.T) {
	original := encodeTestPNG(t, 4000, 1000)

	normalized, mimeType, err := NormalizeForProvider(original, "image/png")

	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mimeType)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(normalized))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 1920, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
}

func TestNormalizeDownscalesTallImage(t *testing.T) {
	original := encodeTestPNG(t, 1000, 4000)

	normalized, mimeType, err := NormalizeForProvider(original, "image/png")

	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mimeType)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(normalized))
	require.NoError(t, err)
	assert.Equal(t, 270, cfg.Width)
	assert.Equal(t, 1080, cfg.Height)
}

func TestNormalizeRejectsUndecodableBytes(t *testing.T) {
	_, _, err := NormalizeForProvider([]byte("definitely not an image"), "image/png")

	assert.ErrorIs(t, err, ErrImageDecode)
}
