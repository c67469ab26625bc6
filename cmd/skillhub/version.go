package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newVersionCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of skillhub",
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(out, "skillhub %s\n", version)
		},
	}
}
