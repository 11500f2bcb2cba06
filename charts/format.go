// Package charts renders scheduling results as image files.
package charts

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Format is an output image encoding understood by plot.Save.
type Format string

const (
	PNG Format = "png"
	PDF Format = "pdf"
	SVG Format = "svg"
)

var ErrInvalidFormat = errors.New("invalid output format")

// ParseFormat accepts png, pdf or svg.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case PNG, PDF, SVG:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}

func outputPath(dir, name string, format Format) string {
	return filepath.Join(dir, fmt.Sprintf("%s.%s", name, format))
}
