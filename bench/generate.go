package bench

import (
	"fmt"
	"os"
	"path/filepath"
)

// snippet is appended repeatedly to build a sample. It deliberately uses
// constructs the minimal dialect does not cover.
const snippet = "int main()\n{\nprintf(\"Hello, World!\");\nint floati = 0.4564616646646;\n" +
	"char* voi = \"asdkjakf46513h...kjsfk\\n\\njaskjf\"\nreturn 0;\n}"

// Sample is one generated input file.
type Sample struct {
	Path string
	Size int64
}

// Generate creates the samples test0.c, test<step>.c, ... in dir. Existing
// files are extended, never truncated, so reruns reuse earlier output.
func Generate(dir string, steps int, stepSize int64) ([]Sample, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create sample dir: %w", err)
	}
	samples := make([]Sample, 0, steps)
	for i := range steps {
		target := int64(i) * stepSize
		path := filepath.Join(dir, fmt.Sprintf("test%d.c", target))
		size, err := fill(path, target)
		if err != nil {
			return nil, err
		}
		samples = append(samples, Sample{Path: path, Size: size})
	}
	return samples, nil
}

func fill(path string, target int64) (int64, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("failed to open sample: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat sample: %w", err)
	}
	size := fi.Size()
	for size < target {
		n, err := f.WriteString(snippet)
		if err != nil {
			return 0, fmt.Errorf("failed to write sample: %w", err)
		}
		size += int64(n)
	}
	return size, f.Close()
}
