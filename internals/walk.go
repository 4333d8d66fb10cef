package internals

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileEntry is one regular file discovered by Scan.
// RelPath is relative to the scanned root and always slash-separated,
// so manifests stay comparable across platforms.
type FileEntry struct {
	RelPath string
	AbsPath string
}

// Scan enumerates all regular files under rootDir recursively, in
// deterministic lexical order. Any file whose basename equals excludeName
// (the manifest's own output file) or one of excludeBasename is skipped
// at any depth. Non-regular nodes (directories, symlinks, pipes, sockets)
// are never emitted.
func Scan(rootDir, excludeName string, excludeBasename []string) ([]FileEntry, error) {
	info, err := os.Stat(rootDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf(`%w: %s`, ErrDirectoryNotFound, rootDir)
	}

	entries := make([]FileEntry, 0, 64)
	err = filepath.WalkDir(rootDir, func(path string, node fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !node.Type().IsRegular() {
			return nil
		}
		name := node.Name()
		if name == excludeName || contains(excludeBasename, name) {
			return nil
		}

		rel, err := filepath.Rel(rootDir, path)
		if err != nil {
			return err
		}
		entries = append(entries, FileEntry{
			RelPath: filepath.ToSlash(rel),
			AbsPath: path,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
