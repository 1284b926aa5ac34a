// Package lib contains the core, reusable services for the hashtree application.
package lib

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/denormal/go-gitignore"
)

var (
	// ignoreCache stores compiled gitignore.GitIgnore objects to avoid
	// re-reading and re-parsing the same pattern file. The key is the
	// canonical absolute path to the pattern file. Access is serialized by a
	// global mutex because the gitignore library appears to have issues with
	// concurrent use.
	ignoreCache = make(map[string]gitignore.GitIgnore)
	cacheMutex  = &sync.Mutex{}
)

// IsPathIgnored checks whether a path relative to baseDir matches a pattern
// in the named ignore file. ignoreFile is resolved against baseDir when it
// is not absolute. The pattern file itself is always ignored. A missing or
// unreadable pattern file ignores nothing.
func IsPathIgnored(baseDir, ignoreFile, path string) bool {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	// Canonicalize both paths. On macOS t.TempDir and friends hand out
	// symlinked paths (/var -> /private/var), and filepath.Rel needs both
	// arguments in the same form.
	canonicalBaseDir, err := filepath.EvalSymlinks(baseDir)
	if err != nil {
		canonicalBaseDir = baseDir
	}

	ignorePath := ignoreFile
	if !filepath.IsAbs(ignorePath) {
		ignorePath = filepath.Join(canonicalBaseDir, ignoreFile)
	}

	matcher, found := ignoreCache[ignorePath]
	if !found {
		matcher = loadIgnoreMatcher(canonicalBaseDir, ignorePath)
		ignoreCache[ignorePath] = matcher
	}

	canonicalPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		canonicalPath = path
	}

	relativePath, err := filepath.Rel(canonicalBaseDir, canonicalPath)
	if err != nil {
		// If we can't determine the relative path, it's safest not to ignore.
		return false
	}
	// The gitignore library expects forward-slash separators, even on Windows.
	slashedPath := filepath.ToSlash(relativePath)

	match := matcher.Match(slashedPath)
	if match == nil {
		match = matcher.Match(canonicalPath)
	}
	if match == nil {
		return false
	}
	return match.Ignore()
}

// loadIgnoreMatcher reads the pattern file and compiles its patterns into a
// gitignore.GitIgnore object rooted at baseDir.
func loadIgnoreMatcher(baseDir, ignorePath string) gitignore.GitIgnore {
	// The pattern file never participates in hashing.
	rawPatterns := []string{filepath.Base(ignorePath)}

	if content, err := os.ReadFile(ignorePath); err == nil {
		rawPatterns = append(rawPatterns, strings.Split(string(content), "\n")...)
	}

	// Clean up the patterns: remove comments and trim whitespace.
	var finalPatterns []string
	for _, p := range rawPatterns {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		// Normalize Windows-style backslashes to forward slashes.
		trimmed = strings.ReplaceAll(trimmed, "\\", "/")

		// Convert directory patterns (ending with /) to glob patterns for
		// better gitignore compatibility.
		if strings.HasSuffix(trimmed, "/") && !strings.HasSuffix(trimmed, "**/") {
			trimmed = trimmed + "**"
		}
		finalPatterns = append(finalPatterns, trimmed)
	}

	matcher := gitignore.New(
		strings.NewReader(strings.Join(finalPatterns, "\n")),
		baseDir,
		// The error handler tells the parser to continue on error.
		func(err gitignore.Error) bool { return false },
	)

	// If the matcher fails to compile, fall back to one that ignores nothing.
	if matcher == nil {
		return gitignore.New(strings.NewReader(""), "", nil)
	}

	return matcher
}

// ResetIgnoreState clears the ignore cache. This is used for testing.
func ResetIgnoreState() {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()
	ignoreCache = make(map[string]gitignore.GitIgnore)
}
