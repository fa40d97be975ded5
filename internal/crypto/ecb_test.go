package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// Vectors produced with `openssl enc -des-ede3 -K <EXMLKey>`.
func TestEncryptECB_KnownAnswer(t *testing.T) {
	cases := []struct {
		name  string
		plain []byte
		want  string
	}{
		{"xml prolog block", []byte("<?xml ve"), "f122c4662c2b2ff2"},
		{"padded short input", Pad([]byte("<ccf/>")), "d2db1e13115a3517"},
		{"full pad block", Pad(nil), "26d0fe5592e8ffce"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EncryptECB(tc.plain)
			require.NoError(t, err)
			assert.Equal(t, tc.want, hex.EncodeToString(got))

			back, err := DecryptECB(mustHex(t, tc.want))
			require.NoError(t, err)
			assert.Equal(t, tc.plain, back)
		})
	}
}

func TestECB_BlocksAreIndependent(t *testing.T) {
	plain := bytes.Repeat([]byte("ABCDEFGH"), 3)
	enc, err := EncryptECB(plain)
	require.NoError(t, err)
	assert.Equal(t, enc[0:8], enc[8:16])
	assert.Equal(t, enc[8:16], enc[16:24])
}

func TestECB_RejectsPartialBlocks(t *testing.T) {
	_, err := DecryptECB(make([]byte, 9))
	assert.Error(t, err)
	_, err = EncryptECB(make([]byte, 7))
	assert.Error(t, err)
}

func TestECB_DoesNotMutateInput(t *testing.T) {
	plain := []byte("12345678")
	_, err := EncryptECB(plain)
	require.NoError(t, err)
	assert.Equal(t, []byte("12345678"), plain)
}
