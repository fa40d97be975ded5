// Package exml encrypts and decrypts EXML containers: 3DES in ECB mode under a
// fixed key, with a PKCS#7-style trailer. There is no header, magic or length
// field; the trailer is the only framing.
package exml

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"sdd-exml/internal/crypto"
)

var (
	// ErrBlockSize is returned when a container is empty or not a whole number of blocks.
	ErrBlockSize = errors.New("exml: container length is not a positive multiple of 8")

	// ErrMalformedPadding is returned by a strict Codec when the trailer byte is not a
	// recognisable padding length. The plaintext is still returned, unstripped.
	ErrMalformedPadding = errors.New("exml: padding trailer out of range")
)

// Codec converts between EXML containers and plaintext.
// The zero value is ready to use and never reports padding problems.
type Codec struct {
	// Strict makes Decrypt return ErrMalformedPadding alongside the plaintext
	// when the trailer is out of range.
	Strict bool
	Logger *logrus.Logger
}

var defaultCodec Codec

// Decrypt decrypts a container with the default, permissive Codec.
func Decrypt(container []byte) ([]byte, error) {
	return defaultCodec.Decrypt(container)
}

// Encrypt encrypts plaintext with the default Codec.
func Encrypt(plain []byte) []byte {
	return defaultCodec.Encrypt(plain)
}

// Decrypt decrypts every block and strips the padding trailer.
//
// A trailer of 1..7 removes that many bytes, and a full block of 0x08 (what
// Encrypt appends to aligned input) is removed whole. Any other trailer leaves
// the plaintext unmodified.
func (c *Codec) Decrypt(container []byte) ([]byte, error) {
	if len(container) == 0 || len(container)%crypto.BlockSize != 0 {
		return nil, fmt.Errorf("%w (got %d bytes)", ErrBlockSize, len(container))
	}

	plain, err := crypto.DecryptECB(container)
	if err != nil {
		return nil, fmt.Errorf("exml: %w", err)
	}

	n, ok := crypto.TrailerLen(plain)
	if !ok {
		trailer := plain[len(plain)-1]
		if c.Strict {
			c.logger().WithFields(logrus.Fields{
				"trailer": trailer,
				"size":    len(plain),
			}).Warn("exml: padding trailer out of range, output left unstripped")
			return plain, ErrMalformedPadding
		}
		c.logger().WithField("trailer", trailer).Debug("exml: no padding trailer")
		return plain, nil
	}
	return plain[:len(plain)-n], nil
}

// Encrypt pads plain to the block size (always adding at least one byte) and
// encrypts it. The input is not modified.
func (c *Codec) Encrypt(plain []byte) []byte {
	out, err := crypto.EncryptECB(crypto.Pad(plain))
	if err != nil {
		// Pad always yields whole blocks.
		panic(err)
	}
	return out
}

func (c *Codec) logger() *logrus.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logrus.StandardLogger()
}
