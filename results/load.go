package results

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Load reads a .json or .csv results file.
func Load(path string) (*Results, error) {
	var read func(io.Reader) (*Results, error)
	switch filepath.Ext(path) {
	case ".json":
		read = ReadJSON
	case ".csv":
		read = ReadCSV
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: error opening results file", err)
	}
	defer f.Close()

	res, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}
