package main

import "testing"

func TestParseS3URL(t *testing.T) {
	cases := []struct {
		input  string
		bucket string
		key    string
		ok     bool
	}{
		{"s3://mwsql-dumps/enwiki/page.sql.gz", "mwsql-dumps", "enwiki/page.sql.gz", true},
		{"/local/path/page.sql", "", "", false},
		{"s3://bucket-only", "", "", false},
	}
	for _, c := range cases {
		bucket, key, ok := parseS3URL(c.input)
		if ok != c.ok {
			t.Errorf("parseS3URL(%q): ok = %v, want %v", c.input, ok, c.ok)
			continue
		}
		if ok && (bucket != c.bucket || key != c.key) {
			t.Errorf("parseS3URL(%q) = (%q, %q), want (%q, %q)", c.input, bucket, key, c.bucket, c.key)
		}
	}
}

func TestResolveSourceLeavesLocalPathsAlone(t *testing.T) {
	local, cleanup, err := resolveSource(nil, "/tmp/does-not-need-fetching.sql", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer cleanup()
	if local != "/tmp/does-not-need-fetching.sql" {
		t.Errorf("resolveSource changed a local path to %q", local)
	}
}

func TestResolveSourceRequiresS3ClientForS3URL(t *testing.T) {
	if _, _, err := resolveSource(nil, "s3://bucket/key", nil); err == nil {
		t.Fatal("expected an error when no S3 client is configured")
	}
}
