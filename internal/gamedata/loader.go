package gamedata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
)

// source is where data files are read from. Files missing from it fall
// back to the embedded copies.
var source fs.FS

// SetSource makes Load prefer files from fsys (e.g., os.DirFS of a user
// data directory). Passing nil restores the embedded data.
func SetSource(fsys fs.FS) {
	source = fsys
}

// Load reads and unmarshals a JSON data file.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := readFile(filename)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

func readFile(filename string) ([]byte, error) {
	if source != nil {
		content, err := fs.ReadFile(source, filename)
		if err == nil {
			return content, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read data file %s: %w", filename, err)
		}
	}

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}
	return content, nil
}
