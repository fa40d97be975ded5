package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdd-exml/internal/config"
	"sdd-exml/internal/exml"
)

func TestRunBatch(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(filepath.Join(in, "A.exml"), exml.Encrypt([]byte("<a/>")), 0644))

	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := config.Config{OutputDir: out, Workers: 1}

	code := runBatch(cfg, &exml.Codec{Logger: log}, log, in)
	assert.Equal(t, 0, code)

	got, err := os.ReadFile(filepath.Join(out, "A.exml-decrypted"))
	require.NoError(t, err)
	assert.Equal(t, []byte("<a/>"), got)
	assert.FileExists(t, filepath.Join(out, "manifest.json"))
}

func TestRunBatch_FailureExitCode(t *testing.T) {
	in := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(in, "bad.exml"), []byte("abc"), 0644))

	log := logrus.New()
	log.SetOutput(io.Discard)
	code := runBatch(config.Config{Workers: 1}, &exml.Codec{Logger: log}, log, in)
	assert.Equal(t, 1, code)
	assert.FileExists(t, filepath.Join(in, "manifest.json"))
}

func TestRunBatch_MissingDir(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	code := runBatch(config.Config{Workers: 1}, &exml.Codec{Logger: log}, log, filepath.Join(t.TempDir(), "nope"))
	assert.Equal(t, 1, code)
}
