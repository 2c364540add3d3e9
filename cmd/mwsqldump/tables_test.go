package main

import "testing"

func TestLookupTableIsCaseInsensitive(t *testing.T) {
	for _, name := range []string{"page", "Page", "PAGE", "pAgE"} {
		if _, ok := lookupTable(name); !ok {
			t.Errorf("lookupTable(%q) not found", name)
		}
	}
}

func TestLookupTableRejectsUnknownName(t *testing.T) {
	if _, ok := lookupTable("no_such_table"); ok {
		t.Fatal("no_such_table should not resolve")
	}
}

func TestAllTwentyTwoSchemaTablesAreRegistered(t *testing.T) {
	want := []string{
		"babel", "category", "categorylinks", "change_tag", "change_tag_def",
		"externallinks", "image", "imagelinks", "iwlinks", "langlinks",
		"page", "pagelinks", "page_props", "page_restrictions",
		"protected_titles", "redirect", "sites", "site_stats",
		"templatelinks", "user_former_groups", "user_groups", "wbc_entity_usage",
	}
	if len(tableDumpers) != len(want) {
		t.Fatalf("tableDumpers has %d entries, want %d", len(tableDumpers), len(want))
	}
	for _, name := range want {
		if _, ok := tableDumpers[name]; !ok {
			t.Errorf("missing dumper for table %q", name)
		}
	}
}
