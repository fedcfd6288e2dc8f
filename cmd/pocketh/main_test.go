package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"filippo.io/age"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/pocketh/pkg/account"
	"github.com/luxfi/pocketh/pkg/encryption"
	"github.com/luxfi/pocketh/pkg/mnemonic"
)

// runApp executes pocketh with args and returns what it wrote to stdout.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(context.Background(), append([]string{"pocketh"}, args...))
	return out.String(), err
}

func TestSelectorCommand(t *testing.T) {
	out, err := runApp(t, "selector", "transfer(address,uint256)", "balanceOf(address)")
	require.NoError(t, err)
	assert.Equal(t, "0xa9059cbb transfer(address,uint256)\n0x70a08231 balanceOf(address)\n", out)

	_, err = runApp(t, "selector")
	assert.Error(t, err)
}

func TestKeccakCommand(t *testing.T) {
	out, err := runApp(t, "keccak", "--hex", "0x")
	require.NoError(t, err)
	assert.Equal(t, "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470\n", out)

	out, err = runApp(t, "keccak", "transfer(address,uint256)")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "0xa9059cbb"))

	_, err = runApp(t, "keccak", "--hex", "0xzz")
	assert.Error(t, err)
}

func TestConversionCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"from-wei", "--unit", "gwei", "1000000000"}, "1.000000000"},
		{[]string{"from-wei", "1"}, "0.000000000000000001"},
		{[]string{"to-wei", "1.5"}, "1500000000000000000"},
		{[]string{"to-wei", "--unit", "gwei", "2"}, "2000000000"},
		{[]string{"to-hex", "255"}, "0xff"},
		{[]string{"to-dec", "0xff"}, "255"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := runApp(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}

	_, err := runApp(t, "to-wei", "-1")
	assert.Error(t, err)
	_, err = runApp(t, "to-hex")
	assert.Error(t, err)
}

func TestJSONFormat(t *testing.T) {
	out, err := runApp(t, "--format", "json", "to-wei", "--unit", "gwei", "3")
	require.NoError(t, err)

	var rec conversionRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, conversionRecord{Input: "3", Output: "3000000000", Unit: "gwei"}, rec)

	_, err = runApp(t, "--format", "yaml", "to-hex", "1")
	assert.Error(t, err)
}

func TestCollideFound(t *testing.T) {
	out, err := runApp(t, "collide",
		"--selector", "0x4476c2f1",
		"--prefix", "mint",
		"--args", "address,uint256",
		"--infix-len", "2",
		"--workers", "4",
	)
	require.NoError(t, err)
	assert.Equal(t, "mintMx(address,uint256)\n", out)
}

func TestCollideJSON(t *testing.T) {
	out, err := runApp(t, "--format", "json", "collide",
		"--target", "withdrawZq()",
		"--prefix", "withdraw",
		"--infix-len", "2",
		"--tie-break", "first",
	)
	require.NoError(t, err)

	var rec collideRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "found", rec.Status)
	assert.Equal(t, "0x7fcf27df", rec.Target)
	assert.Equal(t, "withdrawZq()", rec.Signature)
	assert.Equal(t, "Zq", rec.Infix)
	assert.Equal(t, uint64(883), rec.Index)
	assert.Equal(t, uint64(52*52), rec.Space)
}

func TestCollideNotFound(t *testing.T) {
	out, err := runApp(t, "collide",
		"--target", "transfer(address,uint256)",
		"--prefix", "transfer",
		"--args", "address,uint256",
		"--alphabet", "xy",
		"--infix-len", "4",
	)
	require.ErrorIs(t, err, errNoMatch)
	assert.Contains(t, out, "not found")
	assert.Contains(t, out, "0xa9059cbb")
}

func TestCollideFromConfigEnv(t *testing.T) {
	t.Setenv("POCKETH_SEARCH_INFIX_LENGTH", "2")
	t.Setenv("POCKETH_SEARCH_WORKERS", "3")

	out, err := runApp(t, "collide", "--selector", "4476c2f1", "--prefix", "mint", "--args", "address,uint256")
	require.NoError(t, err)
	assert.Equal(t, "mintMx(address,uint256)\n", out)
}

func TestCollideInvalid(t *testing.T) {
	tests := map[string][]string{
		"no target":       {"collide", "--prefix", "f"},
		"both targets":    {"collide", "--target", "f()", "--selector", "0x12345678"},
		"bad selector":    {"collide", "--selector", "0x1234"},
		"bad alphabet":    {"collide", "--selector", "0x12345678", "--alphabet", "aa"},
		"bad tie-break":   {"collide", "--selector", "0x12345678", "--tie-break", "random"},
		"space too large": {"collide", "--selector", "0x12345678", "--infix-len", "20"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := runApp(t, args...)
			require.Error(t, err)
			assert.NotErrorIs(t, err, errNoMatch)
		})
	}
}

func TestAccountCommand(t *testing.T) {
	out, err := runApp(t, "--format", "json", "account", "--amount", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var rec accountRecord
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		acc, err := account.FromHex(rec.PrivateKey)
		require.NoError(t, err)
		assert.Equal(t, acc.Address.Checksum(), rec.Address)
		assert.Equal(t, acc.PublicKeyHex(), rec.PublicKey)
	}

	_, err = runApp(t, "account", "--amount", "0")
	assert.Error(t, err)
}

func TestAccountSealedToRecipient(t *testing.T) {
	id, err := age.GenerateX25519Identity()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "keys.age")

	out, err := runApp(t, "--format", "json", "account", "--out", path, "--recipient", id.Recipient().String())
	require.NoError(t, err)

	var printed accountRecord
	require.NoError(t, json.Unmarshal([]byte(out), &printed))
	assert.Empty(t, printed.PrivateKey)
	assert.Equal(t, path, printed.File)

	sealed, err := os.ReadFile(path)
	require.NoError(t, err)
	plain, err := encryption.DecryptWithIdentity(sealed, id.String())
	require.NoError(t, err)

	var recs []accountRecord
	require.NoError(t, json.Unmarshal(plain, &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, printed.Address, recs[0].Address)
	acc, err := account.FromHex(recs[0].PrivateKey)
	require.NoError(t, err)
	assert.Equal(t, printed.Address, acc.Address.Checksum())

	// The file is never overwritten.
	_, err = runApp(t, "account", "--out", path, "--recipient", id.Recipient().String())
	assert.Error(t, err)
}

func TestAccountSealedFlagsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.age")
	_, err := runApp(t, "account", "--out", path)
	assert.Error(t, err)
	_, err = runApp(t, "account", "--passphrase")
	assert.Error(t, err)
	_, err = runApp(t, "account", "--out", path, "--passphrase", "--recipient", "age1xyz")
	assert.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestMnemonicCommand(t *testing.T) {
	out, err := runApp(t, "mnemonic", "--amount", "2", "--words", "24")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Len(t, strings.Fields(line), 24)
		assert.True(t, mnemonic.Validate(line))
	}

	out, err = runApp(t, "generate-random-account")
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), mnemonic.DefaultWords)

	_, err = runApp(t, "mnemonic", "--words", "13")
	assert.ErrorIs(t, err, mnemonic.ErrInvalidWordCount)
}

func TestVersionCommand(t *testing.T) {
	out, err := runApp(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pocketh version "+Version+"\n", out)
}
