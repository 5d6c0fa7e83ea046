package cleaner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Namespace decides which output names are still free.
type Namespace interface {
	IsTaken(name string) (bool, error)
	Reserve(name string) error
}

// ErrNameTaken is returned by Reserve when the name is already in use.
var ErrNameTaken = errors.New("name already taken")

// DirNamespace is backed by the live contents of a directory. Nothing is
// cached, every call looks at the filesystem again.
type DirNamespace struct {
	Dir string
}

func (d DirNamespace) IsTaken(name string) (bool, error) {
	_, err := os.Lstat(filepath.Join(d.Dir, name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", name, err)
}

// Reserve creates an empty file under name, failing if it already exists.
func (d DirNamespace) Reserve(name string) error {
	f, err := os.OpenFile(filepath.Join(d.Dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return ErrNameTaken
		}
		return fmt.Errorf("failed to reserve %s: %w", name, err)
	}
	return f.Close()
}

// MemNamespace is an in-memory set of names.
type MemNamespace map[string]struct{}

// NewMemNamespace returns a namespace already holding names.
func NewMemNamespace(names ...string) MemNamespace {
	m := make(MemNamespace, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

func (m MemNamespace) IsTaken(name string) (bool, error) {
	_, ok := m[name]
	return ok, nil
}

func (m MemNamespace) Reserve(name string) error {
	if _, ok := m[name]; ok {
		return ErrNameTaken
	}
	m[name] = struct{}{}
	return nil
}
