package internals

import (
	"os"
	"path/filepath"
	"testing"
)

func buildSampleManifest(t *testing.T, base string) *Manifest {
	builder := &Builder{RootDir: base, Algorithm: HashSHA256, ExcludeName: ManifestName}
	manifest, _, err := builder.Build()
	if err != nil {
		t.Fatal(err)
	}
	return manifest
}

func TestVerifyIntactTree(t *testing.T) {
	base := createSampleTree(t)
	manifest := buildSampleManifest(t, base)

	verifier := &Verifier{Manifest: manifest}
	report, err := verifier.Verify()
	if err != nil {
		t.Fatal(err)
	}

	if report.Total != 2 || report.Passed != 2 || report.Failed != 0 || report.Missing != 0 {
		t.Fatalf(`expected 2/2 passed, got %+v`, report)
	}
	if !report.Intact() || report.Verdict() != `Intact` {
		t.Fatalf(`unmodified tree must verify as Intact, got %s`, report.Verdict())
	}
}

func TestVerifyDetectsMutation(t *testing.T) {
	base := createSampleTree(t)
	manifest := buildSampleManifest(t, base)

	if err := os.WriteFile(filepath.Join(base, `a.txt`), []byte(`HELLO`), 0644); err != nil {
		t.Fatal(err)
	}

	report, err := (&Verifier{Manifest: manifest}).Verify()
	if err != nil {
		t.Fatal(err)
	}
	if report.Failed != 1 || report.Passed != 1 || report.Missing != 0 {
		t.Fatalf(`expected exactly one failed entry, got %+v`, report)
	}
	if report.Intact() {
		t.Fatal(`a mutated tree must verify as Compromised`)
	}

	for _, result := range report.Results {
		switch result.Path {
		case `a.txt`:
			if result.Outcome != Mismatched {
				t.Errorf(`a.txt: expected mismatched, got %s`, result.Outcome)
			}
			if result.Expected != helloSHA256 {
				t.Errorf(`a.txt: expected recorded digest %s, got %s`, helloSHA256, result.Expected)
			}
			if result.Actual == result.Expected || result.Actual == "" {
				t.Errorf(`a.txt: actual digest must differ from expected, got %s`, result.Actual)
			}
		case `b.txt`:
			if result.Outcome != Matched {
				t.Errorf(`b.txt: untouched file must stay matched, got %s`, result.Outcome)
			}
		}
	}
}

func TestVerifyDetectsDeletion(t *testing.T) {
	base := createSampleTree(t)
	manifest := buildSampleManifest(t, base)

	if err := os.Remove(filepath.Join(base, `b.txt`)); err != nil {
		t.Fatal(err)
	}

	report, err := (&Verifier{Manifest: manifest}).Verify()
	if err != nil {
		t.Fatal(err)
	}
	if report.Total != 2 {
		t.Fatalf(`total must stay fixed to the number of entries, got %d`, report.Total)
	}
	if report.Missing != 1 || report.Passed != 1 || report.Failed != 0 {
		t.Fatalf(`expected exactly one missing entry, got %+v`, report)
	}
	if report.Intact() {
		t.Fatal(`a tree with deletions must verify as Compromised`)
	}
}

func TestVerifyTargetDirOverride(t *testing.T) {
	base := createSampleTree(t)
	manifest := buildSampleManifest(t, base)

	// replicate the tree somewhere else, then verify the replica
	replica := t.TempDir()
	for _, name := range []string{`a.txt`, `b.txt`} {
		content, err := os.ReadFile(filepath.Join(base, name))
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(replica, name), content, 0644); err != nil {
			t.Fatal(err)
		}
	}

	report, err := (&Verifier{Manifest: manifest, TargetDir: replica}).Verify()
	if err != nil {
		t.Fatal(err)
	}
	if report.Passed != 2 || !report.Intact() {
		t.Fatalf(`faithful replica must verify as Intact, got %+v`, report)
	}
}

func TestVerifyUnreadableFileCountsAsFailed(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip(`permission bits do not apply to root`)
	}

	base := createSampleTree(t)
	manifest := buildSampleManifest(t, base)

	if err := os.Chmod(filepath.Join(base, `a.txt`), 0000); err != nil {
		t.Fatal(err)
	}

	report, err := (&Verifier{Manifest: manifest}).Verify()
	if err != nil {
		t.Fatalf(`a single unreadable file must not abort the run: %v`, err)
	}
	if report.Failed != 1 || report.Passed != 1 {
		t.Fatalf(`expected the unreadable file to count as failed, got %+v`, report)
	}
	for _, result := range report.Results {
		if result.Path == `a.txt` && result.Err == nil {
			t.Errorf(`a.txt: expected the read error to be carried in the result`)
		}
	}
}

func TestVerifyProgressOrder(t *testing.T) {
	base := createSampleTree(t)
	manifest := buildSampleManifest(t, base)

	var order []string
	verifier := &Verifier{
		Manifest: manifest,
		Progress: func(result EntryResult) { order = append(order, result.Path) },
	}
	if _, err := verifier.Verify(); err != nil {
		t.Fatal(err)
	}
	if len(order) != 2 || order[0] != `a.txt` || order[1] != `b.txt` {
		t.Fatalf(`expected lexical progress order, got %v`, order)
	}
}

func TestVerifyManifestFileRoundTrip(t *testing.T) {
	base := createSampleTree(t)
	manifest := buildSampleManifest(t, base)

	path := filepath.Join(base, ManifestName)
	if err := manifest.WriteFile(path); err != nil {
		t.Fatal(err)
	}

	loaded, report, err := VerifyManifestFile(path, ``)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Metadata.Directory != base {
		t.Errorf(`expected loaded manifest to point at %s, got %s`, base, loaded.Metadata.Directory)
	}
	if report.Passed != 2 || !report.Intact() {
		t.Fatalf(`persisted round trip must verify as Intact, got %+v`, report)
	}
}
