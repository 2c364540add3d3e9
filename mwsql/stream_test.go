package mwsql

import (
	"strings"
	"testing"
)

func pageTuple(id int) string {
	return "(" +
		itoa(id) + ",4,'T','',0,0,0.1,'20200101000000',NULL,1,1,NULL,NULL)"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	if neg {
		b = append([]byte{'-'}, b...)
	}
	return string(b)
}

func TestIterateStreamWithTrailer(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("-- dump preamble\nINSERT INTO `page` VALUES ")
	sb.WriteString(pageTuple(1) + "," + pageTuple(2) + "," + pageTuple(3))
	sb.WriteString(";\n/* comment */\n")

	it := Iterate([]byte(sb.String()), ParsePage)
	var rows []Page
	for it.Next() {
		rows = append(rows, it.Row())
	}
	if it.Err() != nil {
		t.Fatalf("unexpected error: %v", it.Err())
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	for i, r := range rows {
		if int(r.Id) != i+1 {
			t.Errorf("row %d: id = %d, want %d", i, r.Id, i+1)
		}
	}
	remaining := it.Remaining()
	if len(remaining) < 4 || string(remaining[:4]) != ";\n/*" {
		t.Errorf("remaining = %q, want to start with ;\\n/*", remaining)
	}
}

func TestIterateCrossesStatementBoundaries(t *testing.T) {
	input := "INSERT INTO `page` VALUES " + pageTuple(1) + ";\n" +
		"INSERT INTO `page` VALUES " + pageTuple(2) + "," + pageTuple(3) + ";\n/*x*/"
	it := Iterate([]byte(input), ParsePage)
	var ids []int
	for it.Next() {
		ids = append(ids, int(it.Row().Id))
	}
	if it.Err() != nil {
		t.Fatalf("unexpected error: %v", it.Err())
	}
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Fatalf("ids = %v, want [1 2 3] in order", ids)
	}
}

func TestIterateStopsOnFirstMalformedTuple(t *testing.T) {
	input := "INSERT INTO `page` VALUES " + pageTuple(1) + ",(bogus);\n/*x*/"
	it := Iterate([]byte(input), ParsePage)
	count := 0
	for it.Next() {
		count++
	}
	if count != 1 {
		t.Fatalf("got %d rows before the failure, want 1", count)
	}
	if it.Err() == nil {
		t.Fatal("expected an error after the malformed tuple")
	}
}

func TestIterateFailsWhenNoInsertIntoPresent(t *testing.T) {
	it := Iterate([]byte("-- nothing here\n"), ParsePage)
	if it.Next() {
		t.Fatal("should not yield any row")
	}
	if it.Err() == nil {
		t.Fatal("expected an error when no INSERT INTO is found")
	}
}
