package main

import (
	"github.com/spf13/cobra"

	"github.com/welandaz/hashtree-go/internal/hashtree/commands"
)

func NewHashCommand() *cobra.Command {
	var opts commands.HashOptions

	cmd := &cobra.Command{
		Use:   "hash [path]",
		Short: "Compute content-addressed digests for a file or directory tree.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "."
			if len(args) > 0 {
				target = args[0]
			}
			return commands.Hash(target, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Algorithm, "algorithm", "a", "", "Digest algorithm to use (default \"sha512\")")
	cmd.Flags().IntVarP(&opts.BufferSize, "buffer-size", "b", 0, "File read buffer size in bytes (default 8192)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write the result to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the result as a JSON array")
	cmd.Flags().StringVar(&opts.IgnoreFile, "ignore-file", "", "Gitignore-style pattern file used to exclude paths")

	cmd.RegisterFlagCompletionFunc("algorithm", algorithmCompletions)

	return cmd
}
