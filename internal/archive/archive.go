// Package archive reads and writes tool inputs and outputs, transparently
// handling xz-compressed copies of EXML containers and decrypted XML.
package archive

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// xzMagic is the 6-byte xz stream header.
var xzMagic = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}

// IsXZ reports whether data starts with an xz stream header.
func IsXZ(data []byte) bool {
	return bytes.HasPrefix(data, xzMagic)
}

// ReadFile reads path and returns its contents, decompressing xz streams.
func ReadFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("archive: read %s: %w", path, err)
	}
	if !IsXZ(raw) {
		return raw, nil
	}
	data, err := decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("archive: xz %s: %w", path, err)
	}
	return data, nil
}

// WriteFile writes data to path, creating parent directories.
// Paths ending in ".xz" are written as an xz stream.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("archive: mkdir %s: %w", dir, err)
		}
	}

	if strings.EqualFold(filepath.Ext(path), ".xz") {
		packed, err := compress(data)
		if err != nil {
			return fmt.Errorf("archive: xz %s: %w", path, err)
		}
		data = packed
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("archive: write %s: %w", path, err)
	}
	return nil
}

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}
