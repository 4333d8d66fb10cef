package internals

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"
)

// HashAlgo is an alias for string, but specifically can only
// be one of the identifiers for supported hash algorithms.
type HashAlgo string

const (
	HashMD5    HashAlgo = `md5`
	HashSHA1   HashAlgo = `sha1`
	HashSHA256 HashAlgo = `sha256`
	HashSHA512 HashAlgo = `sha512`
	HashSHA3   HashAlgo = `sha3-256`
	HashXXH64  HashAlgo = `xxh64`
)

// DefaultHash is used whenever the user did not pick an algorithm.
const DefaultHash HashAlgo = HashSHA256

// blockSize is the unit of streaming file reads. Reading 64 KiB at a time
// bounds memory use independent of file size.
const blockSize = 65536

// SupportedHashAlgorithms returns the list of supported hash algorithms.
// The slice contains specified hash algorithm identifiers.
func SupportedHashAlgorithms() []string {
	return []string{
		string(HashMD5),
		string(HashSHA1),
		string(HashSHA256),
		string(HashSHA512),
		string(HashSHA3),
		string(HashXXH64),
	}
}

// HashAlgorithmFromString returns a HashAlgo instance,
// given the hash algorithm's name as a string.
func HashAlgorithmFromString(name string) (HashAlgo, error) {
	name = strings.ToLower(name)
	for _, algo := range SupportedHashAlgorithms() {
		if name == algo {
			return HashAlgo(algo), nil
		}
	}
	return DefaultHash, fmt.Errorf(`%w: %q`, ErrUnsupportedAlgorithm, name)
}

// DigestSize returns the output size in bytes for a given hash algorithm.
func (h HashAlgo) DigestSize() int {
	switch h {
	case HashMD5:
		return 16
	case HashSHA1:
		return 20
	case HashSHA256:
		return 32
	case HashSHA512:
		return 64
	case HashSHA3:
		return 32
	case HashXXH64:
		return 8
	}
	return 0
}

// Algorithm returns a freshly initialized Hash instance for this algorithm.
func (h HashAlgo) Algorithm() Hash {
	switch h {
	case HashMD5:
		return NewMD5()
	case HashSHA1:
		return NewSHA1()
	case HashSHA256:
		return NewSHA256()
	case HashSHA512:
		return NewSHA512()
	case HashSHA3:
		return NewSHA3_256()
	case HashXXH64:
		return NewXXH64()
	}
	return DefaultHash.Algorithm()
}

// Hash is a custom interface to define operations
// a hash algorithm needs to support to be used for manifests.
type Hash interface {
	// returns number of bytes of the digest
	Size() int
	// update hash state with content of file at given filepath
	ReadFile(string) error
	// update hash state with given bytes
	ReadBytes([]byte) error
	// reset hash state
	Reset()
	// get hash state digest
	Digest() []byte
	// get hash state digest represented as lowercase hexadecimal string
	HexDigest() string
	// get string representation of this hash algorithm
	Name() string
}

// hashState implements the streaming operations of Hash on top of a stdlib
// hash.Hash instance. The per-algorithm types only add construction,
// Name and Size.
type hashState struct {
	h hash.Hash
}

// ReadFile updates the hash state with the content of the entire file,
// read in blockSize chunks.
func (s *hashState) ReadFile(filepath string) error {
	fd, err := os.Open(filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf(`%w: %s`, ErrNotFound, filepath)
		}
		return fmt.Errorf(`%w: %s`, ErrIO, err)
	}
	defer fd.Close()

	buffer := make([]byte, blockSize)
	for {
		n, err := fd.Read(buffer)
		if n > 0 {
			// hash.Hash.Write never returns an error
			s.h.Write(buffer[0:n])
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf(`%w: %s: %s`, ErrIO, filepath, err)
		}
	}
}

// ReadBytes updates the hash state with individual bytes.
func (s *hashState) ReadBytes(data []byte) error {
	_, err := s.h.Write(data)
	return err
}

// Reset resets the hash state.
func (s *hashState) Reset() {
	s.h.Reset()
}

// Digest returns the digest of the current hash state.
func (s *hashState) Digest() []byte {
	return s.h.Sum([]byte{})
}

// HexDigest returns the digest as a lowercase hexadecimal string.
func (s *hashState) HexDigest() string {
	return hex.EncodeToString(s.Digest())
}
