package internals

import "errors"

// Error taxonomy of the core. Every error returned by this package wraps
// exactly one of these sentinels, so callers can match with errors.Is.
var (
	// ErrNotFound indicates a file recorded or referenced does not exist.
	ErrNotFound = errors.New(`file not found`)

	// ErrIO indicates a read failed mid-stream.
	ErrIO = errors.New(`read failed`)

	// ErrUnsupportedAlgorithm indicates an unrecognized hash algorithm tag.
	ErrUnsupportedAlgorithm = errors.New(`unsupported hash algorithm`)

	// ErrDirectoryNotFound indicates the tree root to scan does not exist.
	ErrDirectoryNotFound = errors.New(`directory not found`)

	// ErrManifestNotFound indicates the manifest file cannot be located.
	ErrManifestNotFound = errors.New(`manifest not found`)

	// ErrManifestCorrupt indicates the persisted manifest cannot be parsed
	// into the expected structure.
	ErrManifestCorrupt = errors.New(`manifest corrupt`)
)
