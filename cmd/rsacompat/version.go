package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/rsacompat/rsacompat-go/pkg/rsacompat"
)

func newVersionCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display the version",
		Long: `Display the rsacompat version and the crypto library it was built
against.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "rsacompat:  %s\n", rsacompat.WrapperVersion())
			fmt.Fprintf(w, "library:    %s\n", rsacompat.LibraryVersion())
			fmt.Fprintf(w, "generation: %s\n", rsacompat.Generation())
			if !verbose {
				return
			}
			fmt.Fprintf(w, "number:     0x%08x\n", rsacompat.LibraryVersionNumber())
			if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Fprintf(w, "go:         %s\n", info.GoVersion)
				fmt.Fprintf(w, "module:     %s %s\n", info.Main.Path, info.Main.Version)
			}
		},
	}

	cmd.Flags().BoolVar(&verbose, "verbose", false, "If enabled, displays the additional information about this build.")
	return cmd
}
