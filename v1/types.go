package v1

// CreateParameters configures one manifest creation run.
type CreateParameters struct {
	// Directory is the tree root to snapshot.
	Directory string
	// Output is the manifest file path. Empty means "checksums.json".
	Output string
	// Algorithm is the hash algorithm tag. Empty means the default.
	Algorithm string
	// ExcludeBasename lists additional file names to skip at any depth.
	ExcludeBasename []string
}

// CreateSummary reports what a manifest creation run did.
type CreateSummary struct {
	// Processed is the number of files recorded in the manifest.
	Processed int
	// Skipped lists relative paths of files that could not be read.
	Skipped []string
}

// VerifyParameters configures one verification run.
type VerifyParameters struct {
	// Manifest is the path of the persisted manifest.
	Manifest string
	// Directory is the tree to verify. Empty means the manifest's
	// recorded source directory.
	Directory string
}

// VerifyOutcome is the aggregate result of one verification run.
type VerifyOutcome struct {
	Total   int
	Passed  int
	Failed  int
	Missing int
	// Intact is true iff nothing failed and nothing is missing.
	Intact bool
}
