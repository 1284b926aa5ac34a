package lib

import (
	"crypto/sha512"
	"os"
	"path/filepath"
	"testing"
)

// setupTestFile writes content to a file in a temp directory and returns its
// path along with a cleanup function.
func setupTestFile(t *testing.T, content []byte) (string, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "hashtree-test-")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	filePath := filepath.Join(tmpDir, "test.txt")
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to write test file: %v", err)
	}

	return filePath, func() { os.RemoveAll(tmpDir) }
}

func TestHashing(t *testing.T) {
	// Known SHA-512 hash for the string "hello world"
	const helloWorldHash = "309ecc489c12d6eb4cc40f50c902f2b4d0ed77ee511a7c7a9bcd3ca86d4cd86f989dd35bc5ff499670da34255b45b0cfd830e81f605dcf7dc5542e93ae9cd76f"
	// Known SHA-512 hash for an empty input
	const emptyHash = "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"

	t.Run("HashBytes for in-memory content", func(t *testing.T) {
		// Arrange
		content := []byte("hello world")

		// Act
		hash := HashBytes(content, sha512.New)

		// Assert
		if hash != helloWorldHash {
			t.Errorf("HashBytes() for 'hello world' was incorrect, got: %s, want: %s", hash, helloWorldHash)
		}
	})

	t.Run("HashBytes for empty content", func(t *testing.T) {
		// Arrange
		content := []byte{}

		// Act
		hash := HashBytes(content, sha512.New)

		// Assert
		if hash != emptyHash {
			t.Errorf("HashBytes() for empty content was incorrect, got: %s, want: %s", hash, emptyHash)
		}
	})

	t.Run("HashFile for file with content", func(t *testing.T) {
		// Arrange
		filePath, cleanup := setupTestFile(t, []byte("hello world"))
		defer cleanup()

		// Act
		hash, err := HashFile(filePath, sha512.New, DefaultBufferSize)

		// Assert
		if err != nil {
			t.Fatalf("HashFile() failed with an unexpected error: %v", err)
		}
		if hash != helloWorldHash {
			t.Errorf("HashFile() for 'hello world' file was incorrect, got: %s, want: %s", hash, helloWorldHash)
		}
	})

	t.Run("HashFile for empty file", func(t *testing.T) {
		// Arrange
		filePath, cleanup := setupTestFile(t, []byte{})
		defer cleanup()

		// Act
		hash, err := HashFile(filePath, sha512.New, DefaultBufferSize)

		// Assert
		if err != nil {
			t.Fatalf("HashFile() for empty file failed with an unexpected error: %v", err)
		}
		if hash != emptyHash {
			t.Errorf("HashFile() for empty file was incorrect, got: %s, want: %s", hash, emptyHash)
		}
	})

	t.Run("HashFile streaming matches one-shot hashing", func(t *testing.T) {
		// A buffer far smaller than the content forces many read iterations;
		// the result must not change.
		filePath, cleanup := setupTestFile(t, []byte("hello world"))
		defer cleanup()

		hash, err := HashFile(filePath, sha512.New, 1)
		if err != nil {
			t.Fatalf("HashFile() with 1-byte buffer failed: %v", err)
		}
		if hash != helloWorldHash {
			t.Errorf("HashFile() with 1-byte buffer was incorrect, got: %s, want: %s", hash, helloWorldHash)
		}
	})

	t.Run("HashFile for non-existent file", func(t *testing.T) {
		// Arrange
		nonExistentPath := filepath.Join(t.TempDir(), "this_does_not_exist.txt")

		// Act
		_, err := HashFile(nonExistentPath, sha512.New, DefaultBufferSize)

		// Assert
		if err == nil {
			t.Fatal("Expected an error when hashing a non-existent file, but got nil")
		}
		if !os.IsNotExist(err) {
			t.Errorf("Expected a 'file not exist' error, but got: %v", err)
		}
	})
}
