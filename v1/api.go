// Package v1 is the stable public API of verisum. It wraps the internals
// package with parameter/result structs that are kept backwards compatible.
package v1

import (
	"path/filepath"

	"github.com/verisum/verisum/internals"
)

const VERSION_MAJOR = 1
const VERSION_MINOR = 0
const VERSION_PATCH = 0
const RELEASE_DATE = "2026-08-23"

// SupportedHashAlgorithms returns the identifiers of all hash algorithms
// a manifest may be created with.
func SupportedHashAlgorithms() []string {
	return internals.SupportedHashAlgorithms()
}

// CreateManifest snapshots params.Directory and persists the manifest to
// params.Output. Files that cannot be read are skipped, reported in the
// summary and never abort the snapshot.
func CreateManifest(params CreateParameters) (CreateSummary, error) {
	output := params.Output
	if output == "" {
		output = internals.ManifestName
	}

	builder := &internals.Builder{
		RootDir:         params.Directory,
		Algorithm:       internals.HashAlgo(params.Algorithm),
		ExcludeName:     filepath.Base(output),
		ExcludeBasename: params.ExcludeBasename,
	}
	manifest, summary, err := builder.Build()
	if err != nil {
		return CreateSummary{}, err
	}
	if err := manifest.WriteFile(output); err != nil {
		return CreateSummary{}, err
	}

	result := CreateSummary{Processed: summary.Processed}
	for _, skipped := range summary.Skipped {
		result.Skipped = append(result.Skipped, skipped.RelPath)
	}
	return result, nil
}

// VerifyTree loads the manifest at params.Manifest and verifies
// params.Directory (or the recorded source directory) against it.
func VerifyTree(params VerifyParameters) (VerifyOutcome, error) {
	_, report, err := internals.VerifyManifestFile(params.Manifest, params.Directory)
	if err != nil {
		return VerifyOutcome{}, err
	}
	return VerifyOutcome{
		Total:   report.Total,
		Passed:  report.Passed,
		Failed:  report.Failed,
		Missing: report.Missing,
		Intact:  report.Intact(),
	}, nil
}
