package internals

import (
	"bytes"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"hash"
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/sha3"
)

// refHash computes the reference digest of data using the underlying
// libraries directly, bypassing the registry under test.
func refHash(t *testing.T, algo HashAlgo, data []byte) string {
	var h hash.Hash
	switch algo {
	case HashMD5:
		h = md5.New()
	case HashSHA1:
		h = sha1.New()
	case HashSHA256:
		h = sha256.New()
	case HashSHA512:
		h = sha512.New()
	case HashSHA3:
		h = sha3.New256()
	case HashXXH64:
		h = xxhash.New()
	default:
		t.Fatalf(`no reference implementation for %q`, algo)
	}
	if _, err := h.Write(data); err != nil {
		t.Fatal(err)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func TestRequiredHashAlgos(t *testing.T) {
	required := []string{`md5`, `sha1`, `sha256`}
	supported := SupportedHashAlgorithms()

	for _, req := range required {
		if !contains(supported, req) {
			t.Errorf(`hash algorithm '%s' unsupported, but support is required`, req)
		}
	}
}

func TestKnownContentDigests(t *testing.T) {
	// well-known digests of the ASCII string "hello"
	data := map[HashAlgo]string{
		HashMD5:    `5d41402abc4b2a76b9719d911017c592`,
		HashSHA1:   `aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d`,
		HashSHA256: `2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824`,
	}
	for algo, expected := range data {
		h := algo.Algorithm()
		if err := h.ReadBytes([]byte(`hello`)); err != nil {
			t.Fatal(err)
		}
		if actual := h.HexDigest(); actual != expected {
			t.Errorf(`digest of "hello" incorrect (%s): expected %s, got %s`, algo, expected, actual)
		}
	}
}

func TestAllAlgorithmsMatchReference(t *testing.T) {
	content := []byte("verisum checks dirεctories\n😊\n")
	for _, name := range SupportedHashAlgorithms() {
		algo, err := HashAlgorithmFromString(name)
		if err != nil {
			t.Fatal(err)
		}
		h := algo.Algorithm()
		if err := h.ReadBytes(content); err != nil {
			t.Fatal(err)
		}
		expected := refHash(t, algo, content)
		if actual := h.HexDigest(); actual != expected {
			t.Errorf(`digest incorrect (%s): expected %s, got %s`, name, expected, actual)
		}
	}
}

// TestReadFileChunking hashes a file larger than one 64 KiB block to cover
// the multi-chunk streaming path.
func TestReadFileChunking(t *testing.T) {
	content := bytes.Repeat([]byte(`0123456789abcdef`), 3*blockSize/16)
	path := filepath.Join(t.TempDir(), `big.bin`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	for _, name := range SupportedHashAlgorithms() {
		algo, _ := HashAlgorithmFromString(name)
		h := algo.Algorithm()
		if err := h.ReadFile(path); err != nil {
			t.Fatal(err)
		}
		expected := refHash(t, algo, content)
		if actual := h.HexDigest(); actual != expected {
			t.Errorf(`file digest incorrect (%s): expected %s, got %s`, name, expected, actual)
		}
	}
}

func TestAlgorithmSensitivity(t *testing.T) {
	h1 := HashMD5.Algorithm()
	h2 := HashSHA256.Algorithm()
	for _, h := range []Hash{h1, h2} {
		if err := h.ReadBytes([]byte(`same content`)); err != nil {
			t.Fatal(err)
		}
	}

	d1, d2 := h1.HexDigest(), h2.HexDigest()
	if len(d1) != 32 {
		t.Errorf(`md5 hex digest must have 32 characters, got %d`, len(d1))
	}
	if len(d2) != 64 {
		t.Errorf(`sha256 hex digest must have 64 characters, got %d`, len(d2))
	}
	if d1 == d2 {
		t.Errorf(`md5 and sha256 digests of the same content must differ`)
	}
}

func TestDigestSizes(t *testing.T) {
	for _, name := range SupportedHashAlgorithms() {
		algo, _ := HashAlgorithmFromString(name)
		h := algo.Algorithm()
		if h.Size() != algo.DigestSize() {
			t.Errorf(`%s: instance size %d != registry size %d`, name, h.Size(), algo.DigestSize())
		}
		if err := h.ReadBytes([]byte(`x`)); err != nil {
			t.Fatal(err)
		}
		if len(h.Digest()) != algo.DigestSize() {
			t.Errorf(`%s: digest has %d bytes, expected %d`, name, len(h.Digest()), algo.DigestSize())
		}
	}
}

func TestReadFileNotFound(t *testing.T) {
	h := HashSHA256.Algorithm()
	err := h.ReadFile(filepath.Join(t.TempDir(), `does-not-exist`))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf(`expected ErrNotFound, got %v`, err)
	}
}

func TestUnknownAlgorithm(t *testing.T) {
	if _, err := HashAlgorithmFromString(`crc1337`); !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Fatalf(`expected ErrUnsupportedAlgorithm, got %v`, err)
	}

	// case-insensitive lookup is accepted
	algo, err := HashAlgorithmFromString(`SHA256`)
	if err != nil {
		t.Fatal(err)
	}
	if algo != HashSHA256 {
		t.Fatalf(`expected sha256, got %s`, algo)
	}
}

func TestResetClearsState(t *testing.T) {
	h := HashSHA256.Algorithm()
	if err := h.ReadBytes([]byte(`garbage`)); err != nil {
		t.Fatal(err)
	}
	h.Reset()
	if err := h.ReadBytes([]byte(`hello`)); err != nil {
		t.Fatal(err)
	}
	expected := `2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824`
	if actual := h.HexDigest(); actual != expected {
		t.Errorf(`digest after Reset incorrect: expected %s, got %s`, expected, actual)
	}
}
