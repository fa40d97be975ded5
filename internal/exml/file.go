package exml

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"sdd-exml/internal/archive"
)

// Mode selects the codec direction for file operations.
type Mode int

const (
	ModeDecrypt Mode = iota
	ModeEncrypt
)

func (m Mode) String() string {
	if m == ModeEncrypt {
		return "encrypt"
	}
	return "decrypt"
}

// OutputPath derives the default output name for input: "<input>-decrypted"
// or "<input>-encrypted".
func OutputPath(input string, mode Mode) string {
	return input + "-" + mode.String() + "ed"
}

// ProcessFile reads in, runs the codec in the given direction and writes out.
// For a strict Codec the output is still written when the padding is malformed,
// and ErrMalformedPadding is returned afterwards.
func (c *Codec) ProcessFile(mode Mode, in, out string) error {
	data, err := archive.ReadFile(in)
	if err != nil {
		return err
	}

	var result []byte
	var warn error
	switch mode {
	case ModeEncrypt:
		result = c.Encrypt(data)
	default:
		result, err = c.Decrypt(data)
		if errors.Is(err, ErrMalformedPadding) {
			warn = err
		} else if err != nil {
			return fmt.Errorf("exml: %s: %w", in, err)
		}
	}

	if err := archive.WriteFile(out, result); err != nil {
		return err
	}

	c.logger().WithFields(logrus.Fields{
		"mode":  mode.String(),
		"in":    in,
		"out":   out,
		"bytes": len(result),
	}).Debug("exml: file processed")

	if warn != nil {
		return fmt.Errorf("exml: %s: %w", in, warn)
	}
	return nil
}

// DecryptFile decrypts the container at in and writes the plaintext to out.
func DecryptFile(in, out string) error {
	return defaultCodec.ProcessFile(ModeDecrypt, in, out)
}

// EncryptFile encrypts the file at in and writes the container to out.
func EncryptFile(in, out string) error {
	return defaultCodec.ProcessFile(ModeEncrypt, in, out)
}
