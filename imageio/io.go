package imageio

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Encode writes src to w in the given format.
func Encode(w io.Writer, format string, src RGBSource) error {
	enc, err := lookupEncoder(format)
	if err != nil {
		return err
	}
	return enc.Encode(w, ToImage(src))
}

// Save writes src to path, choosing the format from the file extension.
func Save(path string, src RGBSource) (err error) {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	enc, err := lookupEncoder(format)
	if err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err := enc.Encode(bw, ToImage(src)); err != nil {
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	return bw.Flush()
}
