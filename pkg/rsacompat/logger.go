package rsacompat

import (
	"context"
	"errors"

	"github.com/rsacompat/rsacompat-go/internal/rsalib"
	"github.com/rsacompat/rsacompat-go/pkg/rsacompat/logging"
)

var logger = logging.New(nil)

// SetLogger replaces the logger that receives library diagnostics. Passing
// nil restores the slog default. It must not race with other calls.
func SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.New(nil)
	}
	logger = l
}

// diagnostic returns the text describing a failure and drains the library
// error queue. A library error carries its own entry; otherwise the newest
// queued entry describes the failure.
func diagnostic(err error) string {
	defer rsalib.ClearError()

	var le *rsalib.LibError
	if errors.As(err, &le) {
		return err.Error()
	}
	if c := rsalib.PeekLastError(); c != 0 {
		return rsalib.ErrorString(c)
	}
	if err != nil {
		return err.Error()
	}
	return "unknown library error"
}

func warn(op, diag string) {
	logger.Error(context.Background(), "crypto library failure", "op", op, "error", diag)
}
