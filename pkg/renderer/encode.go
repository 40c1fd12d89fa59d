package renderer

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"strings"
)

// Format selects the output encoding for a rendered image
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// ParseFormat parses a format name, case-insensitively
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatPPM, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want ppm or png)", name)
	}
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img *Image, format Format) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, img)
	case FormatPNG:
		return EncodePNG(w, img)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WritePPM writes img as a plain-text (P3) PPM, top row first
func WritePPM(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height)
	for _, c := range img.Pixels {
		r, g, b := toBytes(c)
		fmt.Fprintf(bw, "%d %d %d\n", r, g, b)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing PPM: %w", err)
	}
	return nil
}

// EncodePNG writes img as an 8-bit PNG
func EncodePNG(w io.Writer, img *Image) error {
	if err := png.Encode(w, img.ToRGBA()); err != nil {
		return fmt.Errorf("while encoding PNG: %w", err)
	}
	return nil
}
