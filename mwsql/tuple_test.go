package mwsql

import "testing"

func TestTupleRejectsTrailingComma(t *testing.T) {
	// mysqldump never emits a comma before the closing ')'; one tuple
	// field with a stray trailing comma must be rejected, not tolerated.
	_, _, err := ParseImageLink([]byte("(1,'abc',3,)"), 0)
	if err == nil {
		t.Fatal("trailing comma before ')' should be rejected")
	}
}

func TestTupleRequiresCommaBetweenFields(t *testing.T) {
	_, _, err := ParseImageLink([]byte("(1,'abc' 3)"), 0)
	if err == nil {
		t.Fatal("missing comma between fields should be rejected")
	}
}

func TestTupleAtomicityOnFieldFailure(t *testing.T) {
	_, _, err := ParseImageLink([]byte("(1,bogus,3)"), 0)
	if err == nil {
		t.Fatal("malformed field should fail the whole tuple")
	}
}

func TestParseImageLinkWellFormed(t *testing.T) {
	end, r, err := ParseImageLink([]byte("(1,'abc',3)"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if end != 11 || r.From != 1 || r.To != "abc" || r.FromNamespace != 3 {
		t.Errorf("got %+v at %d", r, end)
	}
}
