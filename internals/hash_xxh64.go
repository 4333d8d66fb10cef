package internals

import "github.com/cespare/xxhash/v2"

// XXH64 implements the fast, non-cryptographic hash algorithm xxHash64 by Yann Collet (2012).
// It offers no collision resistance against adversaries and exists for
// quick drift detection on trusted storage.
type XXH64 struct {
	hashState
}

// NewXXH64 returns a properly initialized XXH64 instance
func NewXXH64() *XXH64 {
	c := new(XXH64)
	c.h = xxhash.New()
	return c
}

// Name returns the hash algorithm's name
func (c *XXH64) Name() string {
	return string(HashXXH64)
}

// Size returns the digest size in bytes
func (c *XXH64) Size() int {
	return 8
}
