package internals

import (
	"fmt"
	"os"
	"sort"
	"time"

	json "github.com/goccy/go-json"
)

// ManifestName is the default file name for persisted manifests.
const ManifestName = `checksums.json`

// Metadata describes how and when a manifest was taken.
// CreatedAt is informational only and never used in comparison.
type Metadata struct {
	CreatedAt time.Time `json:"created_at"`
	Algorithm HashAlgo  `json:"algorithm"`
	Directory string    `json:"directory"`
}

// FileRecord is the recorded state of one file at snapshot time.
// Hash is the authority during verification; Size and Modified are
// informational and never compared.
type FileRecord struct {
	Hash     string  `json:"hash"`
	Size     int64   `json:"size"`
	Modified float64 `json:"modified"`
}

// Manifest is a persisted snapshot of relative path → FileRecord for a
// directory tree. Once written to disk it is treated as immutable input
// for all verification runs.
type Manifest struct {
	Metadata Metadata              `json:"metadata"`
	Files    map[string]FileRecord `json:"files"`
}

// NewManifest returns an empty manifest for the given source directory
// and hash algorithm, stamped with the current time.
func NewManifest(directory string, algorithm HashAlgo) *Manifest {
	return &Manifest{
		Metadata: Metadata{
			CreatedAt: time.Now(),
			Algorithm: algorithm,
			Directory: directory,
		},
		Files: make(map[string]FileRecord),
	}
}

// SortedPaths returns the manifest's entry keys in lexical order.
func (m *Manifest) SortedPaths() []string {
	paths := make([]string, 0, len(m.Files))
	for relPath := range m.Files {
		paths = append(paths, relPath)
	}
	sort.Strings(paths)
	return paths
}

// WriteFile persists the manifest as indented JSON to the given path.
// This is the manifest's single mutation point.
func (m *Manifest) WriteFile(path string) error {
	repr, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(repr, '\n'), 0644)
}

// LoadManifest reads and validates a persisted manifest.
// A missing file yields ErrManifestNotFound; anything that does not parse
// into the expected structure yields ErrManifestCorrupt.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf(`%w: %s`, ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf(`%w: %s`, ErrIO, err)
	}

	manifest := new(Manifest)
	if err := json.Unmarshal(raw, manifest); err != nil {
		return nil, fmt.Errorf(`%w: '%s': %s`, ErrManifestCorrupt, path, err)
	}
	if err := manifest.validate(); err != nil {
		return nil, fmt.Errorf(`%w: '%s': %s`, ErrManifestCorrupt, path, err)
	}
	return manifest, nil
}

// validate checks the structural requirements of a loaded manifest.
func (m *Manifest) validate() error {
	if m.Metadata.Algorithm == "" {
		return fmt.Errorf(`missing metadata.algorithm`)
	}
	if _, err := HashAlgorithmFromString(string(m.Metadata.Algorithm)); err != nil {
		return fmt.Errorf(`unknown algorithm tag %q`, m.Metadata.Algorithm)
	}
	if m.Metadata.Directory == "" {
		return fmt.Errorf(`missing metadata.directory`)
	}
	if m.Files == nil {
		return fmt.Errorf(`missing files section`)
	}
	return nil
}
