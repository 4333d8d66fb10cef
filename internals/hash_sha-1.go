package internals

import "crypto/sha1"

// SHA1 implements the Merkle–Damgård structure based, cryptographic hash algorithm invented by NSA (1995)
type SHA1 struct {
	hashState
}

// NewSHA1 returns a properly initialized SHA1 instance
func NewSHA1() *SHA1 {
	c := new(SHA1)
	c.h = sha1.New()
	return c
}

// Name returns the hash algorithm's name
func (c *SHA1) Name() string {
	return string(HashSHA1)
}

// Size returns the digest size in bytes
func (c *SHA1) Size() int {
	return 20
}
