package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

// rgbBuf is a minimal RGBSource for tests.
type rgbBuf struct {
	w, h int
	pix  []uint8
}

func newRGBBuf(w, h int) *rgbBuf {
	return &rgbBuf{w: w, h: h, pix: make([]uint8, w*h*3)}
}

func (b *rgbBuf) Width() int   { return b.w }
func (b *rgbBuf) Height() int  { return b.h }
func (b *rgbBuf) Pix() []uint8 { return b.pix }

func (b *rgbBuf) set(x, y int, r, g, bl uint8) {
	i := (y*b.w + x) * 3
	b.pix[i], b.pix[i+1], b.pix[i+2] = r, g, bl
}

func TestToImageKeepsChannels(t *testing.T) {
	src := newRGBBuf(3, 2)
	src.set(0, 0, 10, 20, 30)
	src.set(2, 1, 200, 100, 50)

	img := ToImage(src)
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("bounds = %v, want 3x2", img.Bounds())
	}
	tests := []struct {
		x, y       int
		r, g, b, a uint8
	}{
		{0, 0, 10, 20, 30, 255},
		{2, 1, 200, 100, 50, 255},
		{1, 0, 0, 0, 0, 255},
	}
	for _, tt := range tests {
		c := img.NRGBAAt(tt.x, tt.y)
		if c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != tt.a {
			t.Errorf("pixel (%d,%d) = %v, want (%d,%d,%d,%d)", tt.x, tt.y, c, tt.r, tt.g, tt.b, tt.a)
		}
	}
}

func TestSavePNGRoundTrip(t *testing.T) {
	src := newRGBBuf(4, 4)
	src.set(1, 2, 100, 150, 200)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := Save(path, src); err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, _ := img.At(1, 2).RGBA()
	if r>>8 != 100 || g>>8 != 150 || b>>8 != 200 {
		t.Errorf("pixel = (%d,%d,%d), want (100,150,200)", r>>8, g>>8, b>>8)
	}
}

func TestSaveAllBuiltinFormats(t *testing.T) {
	src := newRGBBuf(8, 8)
	dir := t.TempDir()
	for _, name := range []string{"a.png", "a.jpg", "a.JPEG", "a.gif", "a.bmp", "a.tif", "a.tiff"} {
		path := filepath.Join(dir, name)
		if err := Save(path, src); err != nil {
			t.Errorf("Save(%s): %v", name, err)
			continue
		}
		if st, err := os.Stat(path); err != nil || st.Size() == 0 {
			t.Errorf("Save(%s) wrote nothing", name)
		}
	}
}

func TestSaveUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xyz")
	err := Save(path, newRGBBuf(1, 1))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Save error = %v, want ErrUnknownFormat", err)
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Error("Save created a file for an unknown format")
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, "nope", newRGBBuf(1, 1)); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Encode error = %v, want ErrUnknownFormat", err)
	}
}

func TestFormats(t *testing.T) {
	got := Formats()
	want := []string{"bmp", "gif", "jpeg", "png", "tiff"}
	for _, f := range want {
		if !slices.Contains(got, f) {
			t.Errorf("Formats() = %v, missing %q", got, f)
		}
	}
	if !slices.IsSorted(got) {
		t.Errorf("Formats() = %v, not sorted", got)
	}
}

func TestRegisterCustomFormat(t *testing.T) {
	var called bool
	Register("test-raw", EncoderFunc(func(w io.Writer, img image.Image) error {
		called = true
		_, err := w.Write([]byte("raw"))
		return err
	}), ".RAW")
	defer Unregister("test-raw")

	format, err := FormatFor("picture.raw")
	if err != nil || format != "test-raw" {
		t.Fatalf("FormatFor = %q, %v; want test-raw", format, err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, "test-raw", newRGBBuf(1, 1)); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !called || buf.String() != "raw" {
		t.Errorf("custom encoder not used: called=%v out=%q", called, buf.String())
	}
}

func TestUnregisterRemovesExtensions(t *testing.T) {
	Register("test-tmp", EncoderFunc(func(io.Writer, image.Image) error { return nil }), ".tmpimg")
	Unregister("test-tmp")
	if _, err := FormatFor("x.tmpimg"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("FormatFor after Unregister = %v, want ErrUnknownFormat", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"nil encoder", func() { Register("nil-enc", nil) }},
		{"duplicate", func() { Register("png", EncoderFunc(png.Encode)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestTerminalShow(t *testing.T) {
	var out bytes.Buffer
	d := NewTerminal(&out, nil)

	img := ToImage(newRGBBuf(4, 4))
	if err := d.Show("demo", img, 0); err != nil {
		t.Fatalf("Show: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want title + 2 rows:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "demo") {
		t.Errorf("title line = %q, want it to contain the window name", lines[0])
	}
	if n := strings.Count(lines[1], "▀"); n != 4 {
		t.Errorf("row has %d cells, want 4", n)
	}
}

func TestTerminalMaxWidth(t *testing.T) {
	var out bytes.Buffer
	d := NewTerminal(&out, nil)
	d.MaxWidth = 5

	if err := d.Show("wide", ToImage(newRGBBuf(20, 2)), 0); err != nil {
		t.Fatalf("Show: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if n := strings.Count(lines[1], "▀"); n != 5 {
		t.Errorf("row has %d cells, want 5", n)
	}
}

func TestTerminalWaitsForInput(t *testing.T) {
	var out bytes.Buffer
	d := NewTerminal(&out, strings.NewReader("\n"))
	if err := d.Show("wait", ToImage(newRGBBuf(1, 1)), 0); err != nil {
		t.Errorf("Show: %v", err)
	}
}

func TestTerminalDelayTimesOut(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	d := NewTerminal(&out, pr)
	start := time.Now()
	if err := d.Show("timeout", ToImage(newRGBBuf(1, 1)), 20*time.Millisecond); err != nil {
		t.Fatalf("Show: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Show blocked for %v, want about 20ms", elapsed)
	}
}

func TestTerminalLineAfterTimeoutAcknowledgesNextShow(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	d := NewTerminal(&out, pr)
	img := ToImage(newRGBBuf(1, 1))
	if err := d.Show("first", img, 10*time.Millisecond); err != nil {
		t.Fatalf("first Show: %v", err)
	}

	go func() { _, _ = io.WriteString(pw, "\n") }()
	done := make(chan error, 1)
	go func() { done <- d.Show("second", img, 0) }()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("second Show: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("line typed after a timed-out show was lost")
	}
}

func TestTerminalEndOfInputAcknowledges(t *testing.T) {
	var out bytes.Buffer
	d := NewTerminal(&out, strings.NewReader("\n"))
	img := ToImage(newRGBBuf(1, 1))
	for i := range 3 {
		if err := d.Show("again", img, 0); err != nil {
			t.Fatalf("Show %d: %v", i, err)
		}
	}
}
