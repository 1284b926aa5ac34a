package main

import (
	"github.com/spf13/cobra"

	"github.com/welandaz/hashtree-go/internal/hashtree/commands"
)

func NewAlgosCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algos",
		Short: "List the supported digest algorithms.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Algos()
		},
	}
}
