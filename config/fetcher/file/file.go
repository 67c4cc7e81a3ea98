package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher for a declarations file.
// The file is read once at construction time and cached.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor that reads the file at fpath from the OS filesystem.
// Returning a constructor lets an Fx container decide when the file is read.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	cleanPath := filepath.Clean(fpath)

	return func() (*Fetcher, error) {
		return read(os.DirFS(filepath.Dir(cleanPath)), filepath.Base(cleanPath), cleanPath)
	}
}

// NewFSFetcher returns a constructor that reads name from fsys, typically an embed.FS
// holding declarations compiled into the binary.
func NewFSFetcher(fsys fs.FS, name string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		return read(fsys, name, name)
	}
}

// Path returns the path the data was read from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the cached data.
func (f *Fetcher) Fetch() ([]byte, error) {
	return slices.Clone(f.data), nil
}

func read(fsys fs.FS, name, display string) (*Fetcher, error) {
	stat, err := fs.Stat(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", display, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", display, ErrPathIsDirectory)
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", display, err)
	}

	if data == nil {
		data = []byte{}
	}

	return &Fetcher{
		filepath: display,
		data:     data,
	}, nil
}
