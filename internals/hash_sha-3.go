package internals

import "golang.org/x/crypto/sha3"

// SHA3_256 implements the Keccak-based, cryptographic hash algorithm standardized by NIST (2015)
type SHA3_256 struct {
	hashState
}

// NewSHA3_256 returns a properly initialized SHA3_256 instance
func NewSHA3_256() *SHA3_256 {
	c := new(SHA3_256)
	c.h = sha3.New256()
	return c
}

// Name returns the hash algorithm's name
func (c *SHA3_256) Name() string {
	return string(HashSHA3)
}

// Size returns the digest size in bytes
func (c *SHA3_256) Size() int {
	return 32
}
