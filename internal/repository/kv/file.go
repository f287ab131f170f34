package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// File stores each blob as one file under a directory. Writes go through a
// temp file and rename so an interrupted write never leaves a half-written
// collection behind.
type File struct {
	dir string
}

func NewFile(dir string) (*File, error) {
	const op = "kv.NewFile"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &File{dir: dir}, nil
}

func (f *File) Get(_ context.Context, key string) ([]byte, bool, error) {
	const op = "kv.File.Get"

	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return data, true, nil
}

func (f *File) Put(_ context.Context, key string, val []byte) error {
	const op = "kv.File.Put"

	tmp, err := os.CreateTemp(f.dir, "."+sanitize(key)+".*")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tmp.Write(val); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.Rename(tmp.Name(), f.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (f *File) Delete(_ context.Context, key string) error {
	const op = "kv.File.Delete"

	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, sanitize(key)+".json")
}

func sanitize(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, key)
}
