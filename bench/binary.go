package bench

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FlagsSuffix names the file next to a binary that describes how it was built.
const FlagsSuffix = ".flags"

// Binary is an external tokenizer under test.
type Binary struct {
	Path  string
	Label string
}

// LoadBinary resolves name and derives its label. A bare name is taken
// relative to the working directory. When <path>.flags exists its contents
// are appended to the label.
func LoadBinary(name string) (Binary, error) {
	path := name
	if !strings.ContainsRune(name, filepath.Separator) {
		path = "." + string(filepath.Separator) + name
	}
	b := Binary{Path: path, Label: name}

	data, err := os.ReadFile(path + FlagsSuffix)
	if errors.Is(err, fs.ErrNotExist) {
		return b, nil
	}
	if err != nil {
		return b, fmt.Errorf("failed to read flags for %s: %w", name, err)
	}
	if flags := strings.Join(strings.Fields(string(data)), " "); flags != "" {
		b.Label = fmt.Sprintf("%s (%s)", name, flags)
	}
	return b, nil
}
