package internals

import "crypto/md5"

// MD5 implements the Merkle–Damgård structure based, cryptographic hash algorithm invented by Ron Rivest (1992)
type MD5 struct {
	hashState
}

// NewMD5 returns a properly initialized MD5 instance
func NewMD5() *MD5 {
	c := new(MD5)
	c.h = md5.New()
	return c
}

// Name returns the hash algorithm's name
func (c *MD5) Name() string {
	return string(HashMD5)
}

// Size returns the digest size in bytes
func (c *MD5) Size() int {
	return 16
}
