package main

import (
	"net/url"
	"os"

	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"
)

// newCompressedSink builds a zap sink that writes the log file as a
// stream of zstd frames. An existing valid log file is appended to as a
// new frame; a corrupt or foreign file is truncated.
func newCompressedSink(u *url.URL) (zap.Sink, error) {
	filePath := u.Path

	flags := os.O_CREATE | os.O_WRONLY

	fileInfo, err := os.Stat(filePath)
	if err == nil && fileInfo.Size() > 0 {
		if isValidZstdFile(filePath) {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}
	}

	file, err := os.OpenFile(filePath, flags, 0644)
	if err != nil {
		return nil, err
	}

	encoder, err := zstd.NewWriter(file, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	return &zstdSink{
		file:    file,
		encoder: encoder,
	}, nil
}

// isValidZstdFile reports whether the file starts with the zstd frame
// magic number.
func isValidZstdFile(filePath string) bool {
	file, err := os.Open(filePath)
	if err != nil {
		return false
	}
	defer func() {
		_ = file.Close()
	}()

	buf := make([]byte, 4)
	n, err := file.Read(buf)
	if err != nil || n < 4 {
		return false
	}

	return buf[0] == 0x28 && buf[1] == 0xB5 && buf[2] == 0x2F && buf[3] == 0xFD
}

// zstdSink satisfies zap's WriteSyncer on top of a zstd encoder.
type zstdSink struct {
	file    *os.File
	encoder *zstd.Encoder
}

// Write reports len(p) on success to satisfy the io.Writer contract,
// regardless of how many compressed bytes hit the file.
func (s *zstdSink) Write(p []byte) (int, error) {
	if _, err := s.encoder.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sync flushes the encoder buffer and syncs the file to disk.
func (s *zstdSink) Sync() error {
	if err := s.encoder.Flush(); err != nil {
		return err
	}
	return s.file.Sync()
}

// Close closes the encoder and the file, keeping the file close even
// when the encoder fails so the descriptor is not leaked.
func (s *zstdSink) Close() error {
	encErr := s.encoder.Close()
	fileErr := s.file.Close()

	if encErr != nil {
		return encErr
	}
	return fileErr
}
