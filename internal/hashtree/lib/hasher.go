// Package lib contains the core, reusable services for the hashtree application.
package lib

import (
	"encoding/hex"
	"hash"
	"io"
	"os"
)

// HashBytes computes the digest of an in-memory byte slice and returns it as
// a lowercase hex-encoded string. A fresh digest instance is constructed per
// call, so the result never depends on earlier hashing.
// This is used for content that is already in memory, such as the
// concatenated child digests of a directory.
func HashBytes(content []byte, newDigest func() hash.Hash) string {
	h := newDigest()
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))
}

// HashFile computes the digest of a file's contents by streaming it from
// disk in chunks of at most bufferSize bytes. Memory use is bounded by the
// buffer size regardless of file size, and the result is identical to
// hashing the whole content in one shot.
// It returns the lowercase hex-encoded digest string and an error if any
// file operation fails; no partial digest is ever returned.
func HashFile(filePath string, newDigest func() hash.Hash, bufferSize int) (string, error) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}

	defer file.Close()

	h := newDigest()
	buf := make([]byte, bufferSize)
	for {
		n, err := file.Read(buf)
		if n > 0 {
			// hash.Hash.Write never returns an error.
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
