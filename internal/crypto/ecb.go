package crypto

import "fmt"

// blockCipher is the subset of cipher.Block the ECB helpers need.
type blockCipher interface {
	BlockSize() int
	Encrypt(dst, src []byte)
	Decrypt(dst, src []byte)
}

// decryptBlocks decrypts data in 8-byte units, each block on its own (no IV, no chaining).
func decryptBlocks(c blockCipher, dst, src []byte) {
	bs := c.BlockSize()
	for i := 0; i+bs <= len(src); i += bs {
		c.Decrypt(dst[i:i+bs], src[i:i+bs])
	}
}

func encryptBlocks(c blockCipher, dst, src []byte) {
	bs := c.BlockSize()
	for i := 0; i+bs <= len(src); i += bs {
		c.Encrypt(dst[i:i+bs], src[i:i+bs])
	}
}

// DecryptECB decrypts data with the EXML key in ECB mode.
// The input length must be a multiple of BlockSize; the input is not modified.
func DecryptECB(data []byte) ([]byte, error) {
	if len(data)%BlockSize != 0 {
		return nil, fmt.Errorf("crypto: ciphertext length %d is not a multiple of %d", len(data), BlockSize)
	}
	out := make([]byte, len(data))
	decryptBlocks(newEXMLCipher(), out, data)
	return out, nil
}

// EncryptECB encrypts already padded data with the EXML key in ECB mode.
func EncryptECB(data []byte) ([]byte, error) {
	if len(data)%BlockSize != 0 {
		return nil, fmt.Errorf("crypto: plaintext length %d is not a multiple of %d", len(data), BlockSize)
	}
	out := make([]byte, len(data))
	encryptBlocks(newEXMLCipher(), out, data)
	return out, nil
}
