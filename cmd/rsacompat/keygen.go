package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rsacompat/rsacompat-go/pkg/rsacompat"
	"github.com/rsacompat/rsacompat-go/pkg/rsacompat/keyfile"
)

var errTerminal = errors.New("refusing to write a private key to a terminal; use --out FILE or --force")

func newKeygenCmd(a *app) *cobra.Command {
	var (
		out   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new key pair",
		Long: `Generate a 2048-bit RSA key pair, check its size, and write it.

--format selects pem (PKCS#1), ssh (authorized_keys line, public half only)
or yaml (component dump). --out - writes to standard output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.keygen(cmd, out, force)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", `output file, or "-" for standard output`)
	cmd.Flags().String("format", "pem", `output format ("pem", "ssh", "yaml")`)
	cmd.Flags().String("comment", "", "comment appended to ssh output")
	cmd.Flags().BoolVar(&force, "force", false, "allow private key output to a terminal")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func (a *app) keygen(cmd *cobra.Command, out string, force bool) error {
	format, err := keyfile.ParseFormat(a.cfg.Format)
	if err != nil {
		return err
	}

	key, err := rsacompat.GenerateKey()
	if err != nil {
		return err
	}
	defer key.Free()

	if !rsacompat.ValidSize(key) {
		return fmt.Errorf("generated key has %d bits in %d bytes", rsacompat.Bits(key), rsacompat.Size(key))
	}

	fp, err := keyfile.Fingerprint(key)
	if err != nil {
		return err
	}

	if out == "-" {
		w := cmd.OutOrStdout()
		if f, ok := w.(*os.File); ok && format != keyfile.FormatSSH && !force && term.IsTerminal(int(f.Fd())) {
			return errTerminal
		}
		data, err := keyfile.Encode(key, format, a.cfg.Comment)
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	} else if err := keyfile.WriteFile(out, key, format, a.cfg.Comment); err != nil {
		return err
	}

	a.log.Info(cmd.Context(), "key generated", "out", out, "format", string(format), "fingerprint", fp)
	return nil
}
