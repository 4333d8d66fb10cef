package internals

import (
	"os"
	"path/filepath"
)

// Outcome classifies one manifest entry after verification.
// Every entry transitions exactly once: pending → terminal outcome.
type Outcome int

const (
	// Matched means the freshly computed digest equals the recorded one.
	Matched Outcome = iota
	// Mismatched means the digests differ, or re-hashing failed.
	Mismatched
	// Missing means the recorded path no longer exists.
	Missing
)

// String returns the outcome's name.
func (o Outcome) String() string {
	switch o {
	case Matched:
		return `matched`
	case Mismatched:
		return `mismatched`
	case Missing:
		return `missing`
	}
	return `unknown`
}

// EntryResult is the terminal verification state of one manifest entry.
type EntryResult struct {
	Path     string
	Outcome  Outcome
	Expected string // digest recorded in the manifest
	Actual   string // freshly computed digest; empty if hashing failed
	Err      error  // read error that forced a Mismatched outcome, if any
}

// Report aggregates one verification run. Total is fixed to the number of
// manifest entries regardless of outcomes.
type Report struct {
	Total   int
	Passed  int
	Failed  int
	Missing int
	Results []EntryResult
}

// Intact reports the overall verdict:
// true iff nothing failed and nothing is missing.
func (r *Report) Intact() bool {
	return r.Failed == 0 && r.Missing == 0
}

// Verdict returns the human-readable overall verdict.
func (r *Report) Verdict() string {
	if r.Intact() {
		return `Intact`
	}
	return `Compromised`
}

// Verifier re-hashes the files recorded in a manifest and reconciles the
// observed state against the recorded state. The manifest is never mutated.
type Verifier struct {
	Manifest *Manifest

	// TargetDir is the tree to verify.
	// Empty means the manifest's source directory.
	TargetDir string

	// Progress, if set, is called once per entry with its terminal result.
	Progress func(EntryResult)
}

// Verify classifies every manifest entry as Matched, Mismatched or Missing,
// in lexical path order. Unreadable files count as failed; they never abort
// the run.
func (v *Verifier) Verify() (*Report, error) {
	targetDir := v.TargetDir
	if targetDir == "" {
		targetDir = v.Manifest.Metadata.Directory
	}
	algo, err := HashAlgorithmFromString(string(v.Manifest.Metadata.Algorithm))
	if err != nil {
		return nil, err
	}
	hash := algo.Algorithm()

	report := &Report{
		Total:   len(v.Manifest.Files),
		Results: make([]EntryResult, 0, len(v.Manifest.Files)),
	}
	for _, relPath := range v.Manifest.SortedPaths() {
		result := verifyEntry(hash, targetDir, relPath, v.Manifest.Files[relPath])
		switch result.Outcome {
		case Matched:
			report.Passed++
		case Mismatched:
			report.Failed++
		case Missing:
			report.Missing++
		}
		report.Results = append(report.Results, result)
		if v.Progress != nil {
			v.Progress(result)
		}
	}
	return report, nil
}

// VerifyManifestFile loads the manifest at manifestPath and verifies
// targetDir (or the manifest's source directory, if empty) against it.
func VerifyManifestFile(manifestPath, targetDir string) (*Manifest, *Report, error) {
	manifest, err := LoadManifest(manifestPath)
	if err != nil {
		return nil, nil, err
	}
	verifier := &Verifier{Manifest: manifest, TargetDir: targetDir}
	report, err := verifier.Verify()
	if err != nil {
		return nil, nil, err
	}
	return manifest, report, nil
}

// verifyEntry evaluates a single manifest entry against the file at
// targetDir/relPath. Digest comparison is exact, case-sensitive string
// equality of lowercase hex digests.
func verifyEntry(hash Hash, targetDir, relPath string, record FileRecord) EntryResult {
	result := EntryResult{Path: relPath, Expected: record.Hash}

	absPath := filepath.Join(targetDir, filepath.FromSlash(relPath))
	if _, err := os.Stat(absPath); err != nil {
		result.Outcome = Missing
		return result
	}

	hash.Reset()
	if err := hash.ReadFile(absPath); err != nil {
		result.Outcome = Mismatched
		result.Err = err
		return result
	}

	result.Actual = hash.HexDigest()
	if result.Actual == record.Hash {
		result.Outcome = Matched
	} else {
		result.Outcome = Mismatched
	}
	return result
}
