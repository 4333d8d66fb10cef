package internals

import (
	"fmt"
	"os"
	"time"
)

// SkippedFile records one file the builder discovered but could not process.
type SkippedFile struct {
	RelPath string
	Err     error
}

// BuildSummary reports what a build run did.
type BuildSummary struct {
	Processed int
	Skipped   []SkippedFile
}

// Builder assembles a Manifest for a directory tree. Files are hashed
// sequentially, each in its own streaming pass. A file that cannot be
// read is skipped and recorded in the summary; a single bad file never
// aborts the snapshot.
type Builder struct {
	RootDir         string
	Algorithm       HashAlgo
	ExcludeName     string   // basename of the manifest's own output file
	ExcludeBasename []string // additional basenames to ignore

	// Progress, if set, is called once per scanned file.
	// err is nil for files that made it into the manifest.
	Progress func(relPath string, err error)
}

// Build scans RootDir and returns the assembled in-memory manifest
// together with a summary of processed and skipped files. Persisting
// the manifest is left to the caller.
func (b *Builder) Build() (*Manifest, *BuildSummary, error) {
	name := string(b.Algorithm)
	if name == "" {
		name = string(DefaultHash)
	}
	algo, err := HashAlgorithmFromString(name)
	if err != nil {
		return nil, nil, err
	}

	entries, err := Scan(b.RootDir, b.ExcludeName, b.ExcludeBasename)
	if err != nil {
		return nil, nil, err
	}

	manifest := NewManifest(b.RootDir, algo)
	summary := new(BuildSummary)
	hash := algo.Algorithm()

	for _, entry := range entries {
		record, err := hashOne(hash, entry.AbsPath)
		if b.Progress != nil {
			b.Progress(entry.RelPath, err)
		}
		if err != nil {
			summary.Skipped = append(summary.Skipped, SkippedFile{RelPath: entry.RelPath, Err: err})
			continue
		}
		manifest.Files[entry.RelPath] = record
		summary.Processed++
	}

	return manifest, summary, nil
}

// hashOne produces the FileRecord of one regular file: a fresh full-content
// digest plus size and modification time at snapshot time.
func hashOne(hash Hash, absPath string) (FileRecord, error) {
	info, err := os.Stat(absPath)
	if err != nil {
		// the file disappeared between scan and hash
		return FileRecord{}, fmt.Errorf(`%w: %s`, ErrNotFound, absPath)
	}

	hash.Reset()
	if err := hash.ReadFile(absPath); err != nil {
		return FileRecord{}, err
	}

	return FileRecord{
		Hash:     hash.HexDigest(),
		Size:     info.Size(),
		Modified: float64(info.ModTime().UnixNano()) / float64(time.Second),
	}, nil
}
