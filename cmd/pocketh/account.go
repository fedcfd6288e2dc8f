package main

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/luxfi/pocketh/pkg/account"
	"github.com/luxfi/pocketh/pkg/common/pathutil"
	"github.com/luxfi/pocketh/pkg/encryption"
	"github.com/luxfi/pocketh/pkg/logger"
	"github.com/luxfi/pocketh/pkg/mnemonic"
)

const passphraseEnv = "POCKETH_PASSPHRASE"

func accountCommand() *cli.Command {
	return &cli.Command{
		Name:  "account",
		Usage: "Generate random secp256k1 accounts",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "amount",
				Aliases: []string{"n"},
				Value:   1,
				Usage:   "Number of accounts to generate",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "Seal the generated keys into this file instead of printing them",
			},
			&cli.StringSliceFlag{
				Name:  "recipient",
				Usage: "age X25519 recipient for --out (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "passphrase",
				Usage: "Seal --out with a passphrase (read from " + passphraseEnv + " or prompted)",
			},
		},
		Action: generateAccounts,
	}
}

func generateAccounts(ctx context.Context, c *cli.Command) error {
	amount := int(c.Int("amount"))
	if amount < 1 {
		return fmt.Errorf("amount must be at least 1, got %d", amount)
	}
	out := c.String("out")
	recipients := c.StringSlice("recipient")
	usePassphrase := c.Bool("passphrase")

	var path string
	if out != "" {
		if len(recipients) == 0 && !usePassphrase {
			return errors.New("--out requires --recipient or --passphrase")
		}
		if len(recipients) > 0 && usePassphrase {
			return errors.New("--recipient and --passphrase are mutually exclusive")
		}
		var err error
		if path, err = pathutil.ValidateOutputPath(out); err != nil {
			return err
		}
	} else if len(recipients) > 0 || usePassphrase {
		return errors.New("--recipient and --passphrase require --out")
	}

	accounts := make([]*account.Account, 0, amount)
	for range amount {
		acc, err := account.Generate(rand.Reader)
		if err != nil {
			return fmt.Errorf("failed to generate account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	if path == "" {
		for _, acc := range accounts {
			if err := emit(c, accountRecord{
				PrivateKey: acc.PrivateKeyHex(),
				PublicKey:  acc.PublicKeyHex(),
				Address:    acc.Address.Checksum(),
			}); err != nil {
				return err
			}
		}
		return nil
	}

	plain, err := keyfile(accounts)
	if err != nil {
		return err
	}
	var sealed []byte
	if usePassphrase {
		pass, err := readPassphrase()
		if err != nil {
			return err
		}
		sealed, err = encryption.EncryptWithPassphrase(plain, pass, 0)
		if err != nil {
			return err
		}
	} else {
		sealed, err = encryption.EncryptToRecipients(plain, recipients...)
		if err != nil {
			return err
		}
	}
	if err := pathutil.WriteNewFile(path, sealed); err != nil {
		return err
	}
	logger.Info("Sealed account keys", "file", path, "accounts", len(accounts))

	for _, acc := range accounts {
		if err := emit(c, accountRecord{Address: acc.Address.Checksum(), File: path}); err != nil {
			return err
		}
	}
	return nil
}

// keyfile renders the accounts as a JSON array of private key records.
func keyfile(accounts []*account.Account) ([]byte, error) {
	recs := make([]accountRecord, len(accounts))
	for i, acc := range accounts {
		recs[i] = accountRecord{
			PrivateKey: acc.PrivateKeyHex(),
			PublicKey:  acc.PublicKeyHex(),
			Address:    acc.Address.Checksum(),
		}
	}
	return json.MarshalIndent(recs, "", "  ")
}

func readPassphrase() (string, error) {
	if pass := os.Getenv(passphraseEnv); pass != "" {
		return pass, nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no terminal to prompt for a passphrase; set %s", passphraseEnv)
	}

	fmt.Fprint(os.Stderr, "Enter passphrase: ")
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}
	fmt.Fprint(os.Stderr, "Confirm passphrase: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}
	if string(first) != string(second) {
		return "", errors.New("passphrases do not match")
	}
	pass := strings.TrimSpace(string(first))
	if pass == "" {
		return "", encryption.ErrEmptyPassphrase
	}
	return pass, nil
}

func mnemonicCommand() *cli.Command {
	return &cli.Command{
		Name:    "mnemonic",
		Aliases: []string{"generate-random-account"},
		Usage:   "Generate random BIP-39 mnemonic phrases",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "amount",
				Aliases: []string{"n"},
				Value:   1,
				Usage:   "Number of phrases to generate",
			},
			&cli.IntFlag{
				Name:  "words",
				Value: mnemonic.DefaultWords,
				Usage: "Words per phrase: 12, 15, 18, 21 or 24",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			amount := int(c.Int("amount"))
			if amount < 1 {
				return fmt.Errorf("amount must be at least 1, got %d", amount)
			}
			words := int(c.Int("words"))
			for range amount {
				phrase, err := mnemonic.Generate(words)
				if err != nil {
					return err
				}
				if err := emit(c, mnemonicRecord{Mnemonic: phrase}); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
