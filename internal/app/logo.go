package app

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"

	"github.com/mark3labs/htmlpack/internal/logger"
)

// ErrNotImage is returned when a logo file is not an image.
var ErrNotImage = errors.New("logo is not an image")

// Formats imaging can decode and re-encode.
var rasterTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/bmp":  true,
	"image/tiff": true,
}

// EncodeLogo turns image bytes into a data URI. Raster images whose longest
// edge exceeds maxSize are scaled down to fit and re-encoded as PNG;
// maxSize <= 0 disables scaling. Vector images pass through unchanged.
func EncodeLogo(data []byte, maxSize int) (string, error) {
	mime := mimetype.Detect(data).String()
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w (detected %s)", ErrNotImage, mime)
	}

	if rasterTypes[mime] && maxSize > 0 {
		img, err := imaging.Decode(bytes.NewReader(data))
		if err != nil {
			return "", fmt.Errorf("decoding logo: %w", err)
		}
		b := img.Bounds()
		if b.Dx() > maxSize || b.Dy() > maxSize {
			logger.Debug("Scaling logo from %dx%d to fit %d", b.Dx(), b.Dy(), maxSize)
			var buf bytes.Buffer
			if err := imaging.Encode(&buf, imaging.Fit(img, maxSize, maxSize, imaging.Lanczos), imaging.PNG); err != nil {
				return "", fmt.Errorf("encoding logo: %w", err)
			}
			data, mime = buf.Bytes(), "image/png"
		}
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// LoadLogo reads an image from fsys and stores it as the app logo.
// On failure the current logo is kept.
func (s *State) LoadLogo(fsys afero.Fs, path string, maxSize int) error {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("reading logo: %w", err)
	}
	uri, err := EncodeLogo(data, maxSize)
	if err != nil {
		return err
	}
	s.SetLogo(uri)
	return nil
}
