package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/rsacompat/rsacompat-go/pkg/rsacompat"
	"github.com/rsacompat/rsacompat-go/pkg/rsacompat/keyfile"
)

var errInspect = errors.New("key failed inspection")

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Report the size and consistency of a stored key",
		Long: `Decode a key in any supported format and report its bit length,
serialized size, SSH fingerprint, any SSH comment, and whether it is a valid
2048-bit key. Private keys are also checked for consistent components. The
command fails when the key is not valid or not consistent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.inspect(cmd, args[0])
		},
	}
}

func (a *app) inspect(cmd *cobra.Command, path string) error {
	key, format, err := keyfile.ReadFile(path)
	if err != nil {
		return err
	}
	defer key.Free()

	fp, err := keyfile.Fingerprint(key)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	private := rsacompat.Export(key, true).IsPrivate()
	valid := rsacompat.ValidSize(key)

	fmt.Fprintf(w, "file:        %s\n", path)
	fmt.Fprintf(w, "format:      %s\n", format)
	fmt.Fprintf(w, "private:     %s\n", yesNo(private))
	fmt.Fprintf(w, "bits:        %d\n", rsacompat.Bits(key))
	fmt.Fprintf(w, "size:        %d\n", rsacompat.Size(key))
	fmt.Fprintf(w, "fingerprint: %s\n", fp)
	if c := keyfile.Comment(key); c != "" {
		fmt.Fprintf(w, "comment:     %s\n", c)
	}
	fmt.Fprintf(w, "valid:       %s\n", verdict(valid))

	failed := !valid
	if private {
		checkErr := keyfile.Check(key)
		fmt.Fprintf(w, "consistent:  %s\n", verdict(checkErr == nil))
		if checkErr != nil {
			failed = true
			printProblems(w, checkErr)
		}
	}

	a.log.Debug(cmd.Context(), "inspected key", "path", path, "fingerprint", fp, "valid", valid)
	if failed {
		return errInspect
	}
	return nil
}

func printProblems(w io.Writer, err error) {
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		fmt.Fprintf(w, "  - %v\n", err)
		return
	}
	for _, e := range merr.Errors {
		fmt.Fprintf(w, "  - %v\n", e)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func verdict(ok bool) string {
	if ok {
		return color.GreenString("yes")
	}
	return color.RedString("no")
}
