package main

import "testing"

func TestDetectTable(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"INSERT INTO `page` VALUES (1);\n", "page", true},
		{"INSERT INTO `no_such_table` VALUES (1);\n", "", false},
		{"-- nothing here\n", "", false},
	}
	for _, c := range cases {
		got, ok := detectTable([]byte(c.input))
		if ok != c.ok {
			t.Errorf("detectTable(%q): ok = %v, want %v", c.input, ok, c.ok)
			continue
		}
		if ok && got != c.want {
			t.Errorf("detectTable(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestRunStatsCountsRowsAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir+"/a.sql", "INSERT INTO `page` VALUES "+
		"(1,0,'Foo',NULL,0,0,0.5,'20200101000000',NULL,1,1,NULL,NULL);\n/*x*/")
	writeFile(t, dir+"/b.sql", "INSERT INTO `page` VALUES "+
		"(2,0,'Bar',NULL,1,0,0.25,'20200101000001',NULL,2,2,NULL,NULL),"+
		"(3,0,'Baz',NULL,1,0,0.75,'20200101000002',NULL,3,3,NULL,NULL);\n/*x*/")

	counts, err := runStats([]string{dir + "/a.sql", dir + "/b.sql"})
	if err != nil {
		t.Fatal(err)
	}
	if counts["page"] != 3 {
		t.Errorf("counts[page] = %d, want 3", counts["page"])
	}
}
