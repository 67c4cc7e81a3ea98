// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read at construction time and cached, so every Fetch returns the same
// declarations for the lifetime of the process. NewFetcher reads from the OS
// filesystem; NewFSFetcher reads from any fs.FS, such as an embed.FS:
//
//	//go:embed serializers.yaml
//	var declarations embed.FS
//
//	fetcher, err := file.NewFSFetcher(declarations, "serializers.yaml")()
//
// Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors and
// errors.Is(err, fs.ErrNotExist) for missing files.
package file
