package main

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsnet/compress/bzip2"
)

// openDumpFile opens path for reading and, if its extension names a
// known compression format, wraps it with the matching decompressor.
// MediaWiki dumps are shipped as plain, .gz or .bz2 SQL scripts.
func openDumpFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		return &readCloserPair{Reader: gz, closers: []io.Closer{gz, f}}, nil
	case ".bz2":
		bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		return &readCloserPair{Reader: bz, closers: []io.Closer{bz, f}}, nil
	default:
		return f, nil
	}
}

// readCloserPair combines a decompressing reader with the underlying
// file it wraps, closing both in order when the caller is done.
type readCloserPair struct {
	io.Reader
	closers []io.Closer
}

func (p *readCloserPair) Close() error {
	var first error
	for _, c := range p.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
