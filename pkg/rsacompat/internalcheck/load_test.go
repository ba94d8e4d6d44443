package internalcheck

import (
	"testing"

	"golang.org/x/tools/go/packages"
)

var checkedPatterns = []string{
	"github.com/rsacompat/rsacompat-go/pkg/rsacompat/...",
	"github.com/rsacompat/rsacompat-go/internal/rsalib",
}

func loadChecked(t *testing.T, mode packages.LoadMode) []*packages.Package {
	t.Helper()

	cfg := &packages.Config{Mode: mode}
	pkgs, err := packages.Load(cfg, checkedPatterns...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if len(pkgs) == 0 {
		t.Fatalf("no packages matched %v", checkedPatterns)
	}
	return pkgs
}
