package crypto

import "bytes"

// Pad appends PKCS#7 padding for BlockSize. Aligned input (including empty input)
// gets a full block of 0x08 so the trailer is always present.
func Pad(data []byte) []byte {
	p := BlockSize - len(data)%BlockSize
	out := make([]byte, len(data), len(data)+p)
	copy(out, data)
	return append(out, bytes.Repeat([]byte{byte(p)}, p)...)
}

// TrailerLen reports how many trailing bytes of a decrypted buffer are padding.
//
//	1..7                 -> that many bytes
//	8, full 0x08 block   -> 8
//	anything else        -> 0, ok=false
//
// The 1..7 range is accepted without checking the repeated bytes; existing
// decrypted artifacts were produced with exactly that rule.
func TrailerLen(data []byte) (n int, ok bool) {
	if len(data) == 0 {
		return 0, false
	}
	p := int(data[len(data)-1])
	switch {
	case p >= 1 && p < BlockSize:
		if p > len(data) {
			return 0, false
		}
		return p, true
	case p == BlockSize && len(data) >= BlockSize:
		if bytes.Equal(data[len(data)-BlockSize:], fullPadBlock) {
			return BlockSize, true
		}
	}
	return 0, false
}

var fullPadBlock = bytes.Repeat([]byte{BlockSize}, BlockSize)
