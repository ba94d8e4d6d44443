package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rsacompat/rsacompat-go/pkg/rsacompat"
	"github.com/rsacompat/rsacompat-go/pkg/rsacompat/logging"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	cfgFile string
	cfg     Config
	log     logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.Discard()}

	cmd := &cobra.Command{
		Use:   "rsacompat",
		Short: "Generate and inspect 2048-bit RSA keys",
		Long: `rsacompat drives the RSA compatibility layer from the command line.

Keys are always 2048-bit with public exponent 65537. Configuration is read
from rsacompat.yaml (the user config directory or the working directory),
RSACOMPAT_* environment variables and flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default searches for rsacompat.yaml)")
	cmd.PersistentFlags().String("log-level", "info", `log level ("debug", "info", "warn", "error")`)

	cmd.AddCommand(newKeygenCmd(a), newInspectCmd(a), newVersionCmd())
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, used, err := loadConfig(cmd.Flags(), a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.LogLevel),
	})
	a.log = logging.New(slog.New(handler))
	rsacompat.SetLogger(a.log)

	if used != "" {
		a.log.Debug(cmd.Context(), "loaded config", "path", used)
	}
	return nil
}
