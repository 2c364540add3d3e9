package main

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"testing"
)

func TestOpenDumpFilePlain(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/page.sql"
	writeFile(t, path, "INSERT INTO `page` VALUES (1);\n")

	r, err := openDumpFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "INSERT INTO `page` VALUES (1);\n" {
		t.Errorf("got %q", got)
	}
}

func TestOpenDumpFileGzip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/page.sql.gz"

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	gz.Write([]byte("INSERT INTO `page` VALUES (1);\n"))
	gz.Close()
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := openDumpFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "INSERT INTO `page` VALUES (1);\n" {
		t.Errorf("got %q", got)
	}
}
