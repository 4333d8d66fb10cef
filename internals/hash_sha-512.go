package internals

import "crypto/sha512"

// SHA512 implements the Merkle–Damgård structure based, cryptographic hash algorithm invented by NSA (2001)
type SHA512 struct {
	hashState
}

// NewSHA512 returns a properly initialized SHA512 instance
func NewSHA512() *SHA512 {
	c := new(SHA512)
	c.h = sha512.New()
	return c
}

// Name returns the hash algorithm's name
func (c *SHA512) Name() string {
	return string(HashSHA512)
}

// Size returns the digest size in bytes
func (c *SHA512) Size() int {
	return 64
}
