// Package commands contains the command-line interface for the hashtree application.
package commands

import (
	"fmt"

	"github.com/welandaz/hashtree-go/internal/hashtree/lib"
)

// Algos is the main function for the 'algos' command. It prints the
// supported digest algorithm names, one per line, marking the default.
func Algos() error {
	for _, name := range lib.SupportedAlgorithms() {
		if name == lib.DefaultAlgorithm {
			fmt.Printf("%s (default)\n", name)
		} else {
			fmt.Println(name)
		}
	}
	return nil
}
