package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned for formats or file extensions with no
// registered encoder.
var ErrUnknownFormat = errors.New("imageio: unknown format")

// Encoder writes an image in one file format.
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
}

// EncoderFunc adapts an ordinary function to the Encoder interface.
type EncoderFunc func(w io.Writer, img image.Image) error

// Encode calls f(w, img).
func (f EncoderFunc) Encode(w io.Writer, img image.Image) error {
	return f(w, img)
}

// JPEGQuality is the quality used by the built-in jpeg encoder.
const JPEGQuality = 90

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	encoders   = make(map[string]Encoder)
	extensions = make(map[string]string)
)

func init() {
	Register("png", EncoderFunc(png.Encode), ".png")
	Register("jpeg", EncoderFunc(func(w io.Writer, img image.Image) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	}), ".jpg", ".jpeg")
	Register("gif", EncoderFunc(func(w io.Writer, img image.Image) error {
		return gif.Encode(w, img, nil)
	}), ".gif")
	Register("bmp", EncoderFunc(bmp.Encode), ".bmp")
	Register("tiff", EncoderFunc(func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}), ".tif", ".tiff")
}

// Register registers an encoder under format and associates it with the
// given file extensions (with leading dot, case-insensitive).
//
// Register panics if enc is nil or format is already registered.
func Register(format string, enc Encoder, exts ...string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if enc == nil {
		panic("imageio: Register encoder is nil")
	}
	if _, dup := encoders[format]; dup {
		panic("imageio: Register called twice for " + format)
	}
	encoders[format] = enc
	for _, ext := range exts {
		extensions[strings.ToLower(ext)] = format
	}
}

// Unregister removes a format and its extensions from the registry.
// This is primarily useful in tests. Unknown formats are a no-op.
func Unregister(format string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(encoders, format)
	for ext, f := range extensions {
		if f == format {
			delete(extensions, ext)
		}
	}
}

// Formats returns the sorted list of registered format names.
func Formats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatFor returns the format registered for the extension of path.
func FormatFor(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	registryMu.RLock()
	format, ok := extensions[ext]
	registryMu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
	}
	return format, nil
}

func lookupEncoder(format string) (Encoder, error) {
	registryMu.RLock()
	enc, ok := encoders[format]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (forgotten import?)", ErrUnknownFormat, format)
	}
	return enc, nil
}
