// Command rsacompat generates and inspects 2048-bit RSA keys through the
// rsacompat adapter.
package main

import (
	"os"

	"github.com/rsacompat/rsacompat-go/pkg/rsacompat"
)

func main() {
	err := newRootCmd().Execute()
	rsacompat.Free()
	if err != nil {
		os.Exit(1)
	}
}
