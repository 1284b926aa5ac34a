// Package commands contains the command-line interface for the hashtree application.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/welandaz/hashtree-go/internal/hashtree/lib"
)

// HashOptions configures a single hashing run.
type HashOptions struct {
	// Algorithm names the digest algorithm. Empty selects the default.
	Algorithm string
	// BufferSize is the file read buffer size in bytes. Zero selects the
	// default.
	BufferSize int
	// Output, when non-empty, names the file the result lines are written
	// to. Otherwise the result is printed to stdout.
	Output string
	// JSON switches stdout output from the line format to a JSON array.
	JSON bool
	// IgnoreFile, when non-empty, names a gitignore-style pattern file used
	// to filter the walk.
	IgnoreFile string
}

// Hash is the main function for the 'hash' command. It validates the
// target, walks the tree and routes the result to the selected sink.
func Hash(target string, opts HashOptions) error {
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("could not resolve absolute path for %s: %w", target, err)
	}
	if _, err := os.Stat(absTarget); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", lib.ErrRootNotFound, absTarget)
	}

	newDigest, err := lib.NewDigest(opts.Algorithm)
	if err != nil {
		return err
	}

	walker := &lib.Walker{
		NewDigest:  newDigest,
		BufferSize: opts.BufferSize,
		IgnoreFile: opts.IgnoreFile,
	}

	entries, err := walker.Walk(absTarget)
	if err != nil {
		return err
	}

	if opts.Output != "" {
		outputPath, err := filepath.Abs(opts.Output)
		if err != nil {
			return fmt.Errorf("could not resolve absolute path for %s: %w", opts.Output, err)
		}
		if err := lib.WriteEntries(outputPath, entries); err != nil {
			return err
		}
		fmt.Printf("Wrote %d hashes to %s\n", len(entries), outputPath)
		return nil
	}

	if opts.JSON {
		data, err := lib.EntriesJSON(entries)
		if err != nil {
			return fmt.Errorf("could not encode hashes as JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Print(lib.FormatEntries(entries))
	return nil
}
