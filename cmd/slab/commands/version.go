package commands

import (
	"fmt"

	"github.com/slab-sh/slab/internal/build"
	"github.com/spf13/cobra"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("slab version %s\n", build.Version)
		},
	}
}
