package imageio

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Display shows an image in a named window.
//
// A zero delay blocks until the viewer acknowledges the image; a positive
// delay blocks at most that long.
type Display interface {
	Show(name string, img image.Image, delay time.Duration) error
}

// Terminal is a Display that prints images as rows of upper half-block
// characters, two pixel rows per text line: the foreground color paints the
// upper pixel and the background color the lower one.
type Terminal struct {
	out      io.Writer
	in       io.Reader
	renderer *lipgloss.Renderer

	readOnce sync.Once
	lines    chan error

	// MaxWidth limits the printed width in cells. Wider images are
	// subsampled. Zero means no limit.
	MaxWidth int
}

// NewTerminal creates a terminal display writing to out and waiting for a
// newline on in. A nil in never acknowledges, so zero-delay shows return
// as soon as the image is printed.
//
// The Terminal owns in: a single reader goroutine consumes it for the
// lifetime of the display, and a line typed after a show has timed out
// acknowledges the next show.
func NewTerminal(out io.Writer, in io.Reader) *Terminal {
	return &Terminal{
		out:      out,
		in:       in,
		renderer: lipgloss.NewRenderer(out),
	}
}

// Show prints the image under a title line and waits according to delay.
func (t *Terminal) Show(name string, img image.Image, delay time.Duration) error {
	title := t.renderer.NewStyle().Bold(true).Render(name)
	if _, err := fmt.Fprintln(t.out, title); err != nil {
		return err
	}
	if _, err := io.WriteString(t.out, t.render(img)); err != nil {
		return err
	}
	return t.wait(delay)
}

// render converts img into half-block rows.
func (t *Terminal) render(img image.Image) string {
	b := img.Bounds()
	step := 1
	if t.MaxWidth > 0 && b.Dx() > t.MaxWidth {
		step = (b.Dx() + t.MaxWidth - 1) / t.MaxWidth
	}

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 * step {
		for x := b.Min.X; x < b.Max.X; x += step {
			style := t.renderer.NewStyle().Foreground(hexColor(img, x, y))
			if y+step < b.Max.Y {
				style = style.Background(hexColor(img, x, y+step))
			}
			sb.WriteString(style.Render("▀"))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// wait blocks for a newline on the input, bounded by delay when positive.
func (t *Terminal) wait(delay time.Duration) error {
	if t.in == nil {
		if delay > 0 {
			time.Sleep(delay)
		}
		return nil
	}

	done := t.acks()
	if delay <= 0 {
		return <-done
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case err := <-done:
		return err
	case <-timer.C:
		return nil
	}
}

// acks starts the input reader on first use. Each line read is sent as a
// nil error; the channel is closed at end of input.
func (t *Terminal) acks() <-chan error {
	t.readOnce.Do(func() {
		t.lines = make(chan error)
		go func() {
			defer close(t.lines)
			r := bufio.NewReader(t.in)
			for {
				_, err := r.ReadString('\n')
				if err == io.EOF {
					return
				}
				t.lines <- err
				if err != nil {
					return
				}
			}
		}()
	})
	return t.lines
}

func hexColor(img image.Image, x, y int) lipgloss.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
