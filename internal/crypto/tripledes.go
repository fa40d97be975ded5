package crypto

import (
	"crypto/cipher"
	"crypto/des"
)

// BlockSize is the 3DES block size in bytes.
const BlockSize = des.BlockSize

// newEXMLCipher builds the EDE3 cipher for EXMLKey.
// des.NewTripleDESCipher only fails on a wrong key length, which EXMLKey cannot have.
func newEXMLCipher() cipher.Block {
	block, err := des.NewTripleDESCipher(EXMLKey[:])
	if err != nil {
		panic("crypto: invalid EXML key: " + err.Error())
	}
	return block
}
