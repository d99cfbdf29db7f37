// Package preview resolves image path templates from a project and renders
// a single frame inline in the terminal.
package preview

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"strings"

	"github.com/blacktop/go-termimg"
	"github.com/nfnt/resize"
)

// FramePath expands the bracketed zero-pad placeholder in an image path
// template with the given frame number. The placeholder is a run of '#'
// inside square brackets; its length is the pad width, so
// `keys\[#####].png` with frame 12 becomes `keys\00012.png`. A template
// without a placeholder is returned unchanged.
func FramePath(template string, frame int) string {
	open := strings.Index(template, "[")
	if open < 0 {
		return template
	}
	end := strings.Index(template[open:], "]")
	if end < 0 {
		return template
	}
	inner := template[open+1 : open+end]
	if inner == "" || strings.Count(inner, "#") != len(inner) {
		return template
	}
	number := fmt.Sprintf("%0*d", len(inner), frame)
	return template[:open] + number + template[open+end+1:]
}

// NormalizePath converts the Windows-style separators EbSynth stores into
// the separator of the current platform so the file can be opened locally.
func NormalizePath(path string) string {
	return strings.ReplaceAll(path, `\`, string(os.PathSeparator))
}

// Render loads the image at path, scales it down to fit maxWidth terminal
// cells and returns an inline-image escape sequence for the detected
// terminal protocol.
func Render(path string, maxWidth int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open frame image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("failed to decode frame image: %w", err)
	}

	if maxWidth < 2 {
		maxWidth = 2
	}

	bounds := img.Bounds()
	aspectRatio := float64(bounds.Dx()) / float64(bounds.Dy())
	heightCells := int(float64(maxWidth) / aspectRatio / 2.0)
	if heightCells < 1 {
		heightCells = 1
	}

	pixelWidth := uint(maxWidth * 8)
	pixelHeight := uint(float64(pixelWidth) / aspectRatio)
	if pixelWidth < 8 {
		pixelWidth = 8
	}
	if pixelHeight < 8 {
		pixelHeight = 8
	}
	scaled := resize.Resize(pixelWidth, pixelHeight, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return "", fmt.Errorf("failed to encode preview: %w", err)
	}

	ti, err := termimg.From(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return "", fmt.Errorf("failed to prepare terminal image: %w", err)
	}

	ti.Protocol(termimg.Kitty).
		Width(maxWidth).
		Height(heightCells).
		Scale(termimg.ScaleFit)

	rendered, err := ti.Render()
	if err != nil {
		return "", fmt.Errorf("failed to render terminal image: %w", err)
	}
	return rendered, nil
}

// Supported reports whether the terminal supports inline images via the
// Kitty graphics protocol
func Supported() bool {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	if strings.Contains(os.Getenv("TERM"), "kitty") {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "kitty" {
		return true
	}
	return termimg.DetectProtocol() == termimg.Kitty
}
