package main

import (
	"bytes"
	"testing"
)

func TestCompressingWriteCloserNone(t *testing.T) {
	var buf bytes.Buffer
	w, err := compressingWriteCloser(&buf, "none")
	if err != nil {
		t.Fatal(err)
	}
	w.Write([]byte("hello"))
	w.Close()
	if buf.String() != "hello" {
		t.Errorf("got %q, want uncompressed passthrough", buf.String())
	}
}

func TestCompressingWriteCloserRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if _, err := compressingWriteCloser(&buf, "lz4"); err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}

func TestCompressingWriteCloserZstdAndBrotliProduceNonTrivialOutput(t *testing.T) {
	for _, format := range []string{"zstd", "brotli"} {
		var buf bytes.Buffer
		w, err := compressingWriteCloser(&buf, format)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if _, err := w.Write([]byte("the quick brown fox jumps over the lazy dog")); err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if buf.Len() == 0 {
			t.Errorf("%s: expected non-empty compressed output", format)
		}
	}
}
