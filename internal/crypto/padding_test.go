package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPad_Lengths(t *testing.T) {
	for n := 0; n <= 17; n++ {
		out := Pad(bytes.Repeat([]byte{'x'}, n))
		p := BlockSize - n%BlockSize
		assert.Len(t, out, n+p, "len %d", n)
		assert.Equal(t, byte(p), out[len(out)-1])
	}
}

func TestPad_AlignedInputGetsFullBlock(t *testing.T) {
	out := Pad([]byte("ABCDEFGH"))
	assert.Len(t, out, 16)
	assert.Equal(t, fullPadBlock, out[8:])
}

func TestTrailerLen(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		n    int
		ok   bool
	}{
		{"empty", nil, 0, false},
		{"one byte pad", []byte("abcdefg\x01"), 1, true},
		{"seven byte pad", []byte("a\x07\x07\x07\x07\x07\x07\x07"), 7, true},
		{"zero trailer", []byte("abcdefg\x00"), 0, false},
		{"lone eight", []byte("abcdefg\x08"), 0, false},
		{"full pad block", append([]byte("abcdefgh"), fullPadBlock...), 8, true},
		{"large trailer", []byte("abcdefg>"), 0, false},
		{"pad longer than data", []byte{0x05}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, ok := TrailerLen(tc.data)
			assert.Equal(t, tc.n, n)
			assert.Equal(t, tc.ok, ok)
		})
	}
}
