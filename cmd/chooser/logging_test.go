package main

import (
	"bytes"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidZstdFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		assert.False(t, isValidZstdFile(filepath.Join(dir, "absent.zst")))
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.zst")
		require.NoError(t, os.WriteFile(path, []byte{}, 0644))
		assert.False(t, isValidZstdFile(path))
	})

	t.Run("plain text file", func(t *testing.T) {
		path := filepath.Join(dir, "plain.log")
		require.NoError(t, os.WriteFile(path, []byte("not compressed"), 0644))
		assert.False(t, isValidZstdFile(path))
	})

	t.Run("zstd file", func(t *testing.T) {
		path := filepath.Join(dir, "valid.zst")
		writeZstd(t, path, "log entry")
		assert.True(t, isValidZstdFile(path))
	})
}

func TestCompressedSink_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chooser.zst")

	sink, err := newCompressedSink(&url.URL{Path: path})
	require.NoError(t, err)

	n, err := sink.Write([]byte("first line\n"))
	require.NoError(t, err)
	assert.Equal(t, len("first line\n"), n)
	require.NoError(t, sink.Sync())
	require.NoError(t, sink.Close())

	assert.Equal(t, "first line\n", readZstd(t, path))
}

func TestCompressedSink_AppendsToValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chooser.zst")
	writeZstd(t, path, "old frame\n")

	sink, err := newCompressedSink(&url.URL{Path: path})
	require.NoError(t, err)
	_, err = sink.Write([]byte("new frame\n"))
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	assert.Equal(t, "old frame\nnew frame\n", readZstd(t, path))
}

func TestCompressedSink_TruncatesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chooser.zst")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0644))

	sink, err := newCompressedSink(&url.URL{Path: path})
	require.NoError(t, err)
	_, err = sink.Write([]byte("fresh\n"))
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	assert.Equal(t, "fresh\n", readZstd(t, path))
}

func writeZstd(t *testing.T, path, content string) {
	t.Helper()
	file, err := os.Create(path)
	require.NoError(t, err)
	encoder, err := zstd.NewWriter(file, zstd.WithEncoderLevel(zstd.SpeedDefault))
	require.NoError(t, err)
	_, err = encoder.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, encoder.Close())
	require.NoError(t, file.Close())
}

func readZstd(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	decoder, err := zstd.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer decoder.Close()
	out, err := io.ReadAll(decoder)
	require.NoError(t, err)
	return string(out)
}
