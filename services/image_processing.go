package services

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// Provider-side bound for uploaded images. Anything larger gets downscaled
// before the generation call to keep payloads small.
const (
	maxProviderWidth  = 1920
	maxProviderHeight = 1080

	normalizedJPEGQuality = 90
)

var ErrImageDecode = errors.New("image could not be decoded")

// NormalizeForProvider bounds an image to maxProviderWidth x maxProviderHeight
// while preserving its aspect ratio. Images already within bounds are returned
// byte-identical with their declared MIME type, so no quality is lost on the
// common case. Larger images are resampled with Lanczos and re-encoded as JPEG.
// The image is never enlarged.
func NormalizeForProvider(imageBytes []byte, declaredMIME string) ([]byte, string, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	if cfg.Width <= maxProviderWidth && cfg.Height <= maxProviderHeight {
		return imageBytes, declaredMIME, nil
	}

	img, err := imaging.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	resized := imaging.Fit(img, maxProviderWidth, maxProviderHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: normalizedJPEGQuality}); err != nil {
		return nil, "", fmt.Errorf("failed to encode normalized image: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}
