package main

import (
	"github.com/spf13/cobra"

	"github.com/welandaz/hashtree-go/internal/hashtree/lib"
)

// algorithmCompletions provides tab completion for the --algorithm flag by
// suggesting the registered digest algorithm names.
func algorithmCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return lib.SupportedAlgorithms(), cobra.ShellCompDirectiveNoFileComp
}
