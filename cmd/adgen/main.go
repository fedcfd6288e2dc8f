// adgen prints one freshly generated account: private key, public key and
// checksummed address.
package main

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"

	"github.com/luxfi/pocketh/pkg/account"
	"github.com/luxfi/pocketh/pkg/logger"
)

func main() {
	if err := run(os.Stdout, rand.Reader); err != nil {
		logger.Fatal("Failed to generate account", err)
	}
}

func run(w io.Writer, rnd io.Reader) error {
	acc, err := account.Generate(rnd)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "private key: %s\npublic key: %s\naddr: %s\n",
		acc.PrivateKeyHex(), acc.PublicKeyHex(), acc.Address.Checksum())
	return err
}
