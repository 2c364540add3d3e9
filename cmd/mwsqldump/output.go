package main

import (
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// compressingWriteCloser wraps out with the compressor named by format
// ("", "none", "zstd", or "brotli"); "" and "none" pass out through
// unchanged wrapped in a no-op Closer.
func compressingWriteCloser(out io.Writer, format string) (io.WriteCloser, error) {
	switch format {
	case "", "none":
		return nopWriteCloser{out}, nil
	case "zstd":
		return zstd.NewWriter(out, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case "brotli":
		return brotli.NewWriterLevel(out, brotli.BestCompression), nil
	default:
		return nil, fmt.Errorf("unknown --compress format %q; want one of: none, zstd, brotli", format)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
