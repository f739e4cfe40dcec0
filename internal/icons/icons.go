// Package icons turns rendered slot bitmaps into the byte formats the
// notification area accepts.
package icons

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	ico "github.com/sergeymakinen/go-ico"
)

// Format is an encoded icon container.
type Format int

const (
	PNG Format = iota
	ICO
)

// Ext returns the file extension for f, without the dot.
func (f Format) Ext() string {
	if f == ICO {
		return "ico"
	}
	return "png"
}

// ParseFormat accepts "png" or "ico", in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "png":
		return PNG, nil
	case "ico":
		return ICO, nil
	}
	return PNG, fmt.Errorf("unknown icon format %q", s)
}

// Encode serializes img in format f.
func Encode(img image.Image, f Format) ([]byte, error) {
	var buf bytes.Buffer
	switch f {
	case ICO:
		if err := ico.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode ICO: %w", err)
		}
	default:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
	}
	return buf.Bytes(), nil
}
