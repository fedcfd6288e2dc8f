package selector

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	testCases := []struct {
		signature string
		expected  string
	}{
		{"", "0xc5d24601"},
		{"transfer(address,uint256)", "0xa9059cbb"},
		{"balanceOf(address)", "0x70a08231"},
		{"createAndOpen(address,address)", "0x581f3c50"},
	}

	for _, tc := range testCases {
		t.Run(tc.signature, func(t *testing.T) {
			assert.Equal(t, tc.expected, Of(tc.signature).Hex())
		})
	}
}

func TestOfIsDeterministic(t *testing.T) {
	first := Of("createAndOpen(address,address)")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Of("createAndOpen(address,address)"))
	}
}

func TestKeccak256(t *testing.T) {
	// Reference digest of the empty input.
	assert.Equal(t,
		"c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		hex.EncodeToString(Keccak256()),
	)
	// Concatenation of parts hashes the same as the joined input.
	assert.Equal(t, Keccak256([]byte("transfer(address,uint256)")), Keccak256([]byte("transfer("), []byte("address,uint256)")))
}

func TestHasherMatchesOf(t *testing.T) {
	h := NewHasher()
	for _, sig := range []string{"", "transfer(address,uint256)", "createAndOpen(address,address)", "balanceOf(address)"} {
		// Repeated use must not leak state between calls.
		assert.Equal(t, Of(sig), h.Selector([]byte(sig)), sig)
	}
}

func TestParse(t *testing.T) {
	s, err := Parse("0x581f3c50")
	require.NoError(t, err)
	assert.Equal(t, Of("createAndOpen(address,address)"), s)
	assert.Equal(t, uint32(0x581f3c50), s.Uint32())

	bare, err := Parse("A9059CBB")
	require.NoError(t, err)
	assert.Equal(t, "0xa9059cbb", bare.String())

	for _, bad := range []string{"", "0x", "0x581f3c", "0x581f3c5000", "0xzz1f3c50", "transfer(address,uint256)"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrInvalid, bad)
	}
}

func TestTextRoundTrip(t *testing.T) {
	type record struct {
		Selector Selector `json:"selector"`
	}
	b, err := json.Marshal(record{Selector: Of("transfer(address,uint256)")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"selector":"0xa9059cbb"}`, string(b))

	var got record
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, Of("transfer(address,uint256)"), got.Selector)

	assert.Error(t, json.Unmarshal([]byte(`{"selector":"0x12"}`), &got))
}
