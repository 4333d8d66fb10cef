package internals

import "crypto/sha256"

// SHA256 implements the Merkle–Damgård structure based, cryptographic hash algorithm invented by NSA (2001)
type SHA256 struct {
	hashState
}

// NewSHA256 returns a properly initialized SHA256 instance
func NewSHA256() *SHA256 {
	c := new(SHA256)
	c.h = sha256.New()
	return c
}

// Name returns the hash algorithm's name
func (c *SHA256) Name() string {
	return string(HashSHA256)
}

// Size returns the digest size in bytes
func (c *SHA256) Size() int {
	return 32
}
