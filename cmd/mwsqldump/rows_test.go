package main

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func init() {
	logger = log.New(&bytes.Buffer{}, "", 0)
}

func TestRunRowsEmitsOneJSONLinePerRow(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/page.sql"
	input := "INSERT INTO `page` VALUES " +
		"(1,0,'Foo',NULL,0,0,0.5,'20200101000000',NULL,1,1,NULL,NULL)," +
		"(2,0,'Bar',NULL,1,0,0.25,'20200101000001',NULL,2,2,NULL,NULL);\n/*x*/"
	writeFile(t, path, input)

	var out bytes.Buffer
	n, err := runRows(path, tableDumpers["page"], &out, "none")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("runRows returned n = %d, want 2", n)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), out.String())
	}
	if !strings.Contains(lines[0], `"Foo"`) {
		t.Errorf("first line missing title Foo: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"Bar"`) {
		t.Errorf("second line missing title Bar: %s", lines[1])
	}
}

func TestRunRowsUnknownTableIsCaughtByCaller(t *testing.T) {
	if _, ok := tableDumpers["no_such_table"]; ok {
		t.Fatal("no_such_table should not be a registered dumper")
	}
}

func TestRunRowsRejectsUnknownCompressFormat(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/page.sql"
	writeFile(t, path, "INSERT INTO `page` VALUES "+
		"(1,0,'Foo',NULL,0,0,0.5,'20200101000000',NULL,1,1,NULL,NULL);\n/*x*/")

	var out bytes.Buffer
	if _, err := runRows(path, tableDumpers["page"], &out, "lzma"); err == nil {
		t.Fatal("expected an error for an unknown --compress format")
	}
}

func TestRunRowsSupportsZstdAndBrotli(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/page.sql"
	writeFile(t, path, "INSERT INTO `page` VALUES "+
		"(1,0,'Foo',NULL,0,0,0.5,'20200101000000',NULL,1,1,NULL,NULL);\n/*x*/")

	for _, format := range []string{"zstd", "brotli"} {
		var out bytes.Buffer
		n, err := runRows(path, tableDumpers["page"], &out, format)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if n != 1 {
			t.Errorf("%s: n = %d, want 1", format, n)
		}
		if out.Len() == 0 {
			t.Errorf("%s: no compressed output written", format)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
