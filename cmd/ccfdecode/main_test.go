package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdd-exml/internal/ccf"
	"sdd-exml/internal/exml"
)

const sampleCCF = `<?xml version="1.0" encoding="UTF-8"?>
<ccf><group start="5" name="GROUP_CCF_EUCD_DOORS"><parameter>
<option value="0x02" name="TWO_DOOR"/><option value="0x04"><tm>4 door</tm></option>
</parameter></group></ccf>`

func TestLoadDocument_PlainAndEncrypted(t *testing.T) {
	dir := t.TempDir()
	log := logrus.New()
	log.SetOutput(io.Discard)
	codec := &exml.Codec{Logger: log}

	plain := filepath.Join(dir, "CCF_DATA.exml-decrypted")
	require.NoError(t, os.WriteFile(plain, []byte(sampleCCF), 0644))
	enc := filepath.Join(dir, "CCF_DATA.exml")
	require.NoError(t, os.WriteFile(enc, exml.Encrypt([]byte(sampleCCF)), 0644))

	for _, path := range []string{plain, enc} {
		doc, err := loadDocument(path, codec, log)
		require.NoError(t, err, path)

		opt, ok := ccf.Extract(doc).Get(5)
		require.True(t, ok, path)
		assert.Equal(t, "Doors", opt.Name)
		label, _ := opt.Values.Get(4)
		assert.Equal(t, "4 door", label)
	}
}

func TestLoadDocument_Errors(t *testing.T) {
	dir := t.TempDir()
	log := logrus.New()
	log.SetOutput(io.Discard)
	codec := &exml.Codec{Logger: log}

	_, err := loadDocument(filepath.Join(dir, "missing"), codec, log)
	assert.ErrorIs(t, err, os.ErrNotExist)

	junk := filepath.Join(dir, "junk.exml")
	require.NoError(t, os.WriteFile(junk, []byte("not a container"), 0644))
	_, err = loadDocument(junk, codec, log)
	assert.ErrorIs(t, err, exml.ErrBlockSize)
}
