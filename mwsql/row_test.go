package mwsql

import "testing"

func TestParsePageRow(t *testing.T) {
	in := `(7,4,'GNU_Free_Documentation_License','',0,0,0.492815242607906,'20200201151554','20200201151623',28863815,2777,'wikitext',NULL)`
	_, p, err := ParsePage([]byte(in), 0)
	if err != nil {
		t.Fatal(err)
	}
	if p.Id != 7 || p.Namespace != 4 || p.Title != "GNU_Free_Documentation_License" {
		t.Errorf("id/namespace/title = %d/%d/%s", p.Id, p.Namespace, p.Title)
	}
	if !p.Restrictions.Valid || len(p.Restrictions.Value) != 0 {
		t.Errorf("restrictions = %+v, want Some(empty map)", p.Restrictions)
	}
	if p.IsRedirect || p.IsNew {
		t.Errorf("is_redirect/is_new should both be false")
	}
	if float64(p.Random) != 0.492815242607906 {
		t.Errorf("random = %v", p.Random)
	}
	if p.Touched.Format("2006-01-02T15:04:05Z") != "2020-02-01T15:15:54Z" {
		t.Errorf("touched = %v", p.Touched)
	}
	if !p.LinksUpdated.Valid || p.LinksUpdated.Value.Format("2006-01-02T15:04:05Z") != "2020-02-01T15:16:23Z" {
		t.Errorf("links_updated = %+v", p.LinksUpdated)
	}
	if p.Latest != 28863815 || p.Len != 2777 {
		t.Errorf("latest/len = %d/%d", p.Latest, p.Len)
	}
	if !p.ContentModel.Valid || p.ContentModel.Value.String() != "wikitext" {
		t.Errorf("content_model = %+v", p.ContentModel)
	}
	if p.Lang.Valid {
		t.Errorf("lang should be absent, got %+v", p.Lang)
	}
}

func TestParseRedirectWithEscapes(t *testing.T) {
	in := `(605368,1,'разблюто','','Discussion from Stephen G. Brown\'s talk-page')`
	_, r, err := ParseRedirect([]byte(in), 0)
	if err != nil {
		t.Fatal(err)
	}
	if r.From != 605368 || r.Namespace != 1 {
		t.Errorf("from/namespace = %d/%d", r.From, r.Namespace)
	}
	if r.Title != "разблюто" {
		t.Errorf("title = %q", r.Title)
	}
	if !r.Interwiki.Valid || r.Interwiki.Value != "" {
		t.Errorf("interwiki = %+v, want Some(\"\")", r.Interwiki)
	}
	if !r.Fragment.Valid || r.Fragment.Value != "Discussion from Stephen G. Brown's talk-page" {
		t.Errorf("fragment = %+v", r.Fragment)
	}
}

func TestParseCategoryLinkPreservesInvalidUTF8Sortkey(t *testing.T) {
	// sortkey is raw-bytes, so it must parse and preserve bytes that
	// would otherwise fail UTF-8 validation (e.g. from truncation).
	buf := append([]byte(nil), "(1,'T','"...)
	buf = append(buf, 0xff, 0xfe)
	buf = append(buf, []byte("','20200101000000','pfx','uca','page')")...)
	_, r, err := ParseCategoryLink(buf, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.SortKey) != 2 || r.SortKey[0] != 0xff || r.SortKey[1] != 0xfe {
		t.Errorf("sortkey = %v, want raw [0xff 0xfe]", r.SortKey)
	}
	if r.Type != PageTypePage {
		t.Errorf("type = %v", r.Type)
	}
}

func TestParsePageInvalidFloatFieldReportsFieldName(t *testing.T) {
	// S4: an invalid numeric token in place of a field reports the
	// offending field's context label.
	in := `(7,66.6,'T','',0,0,0.1,'20200101000000',NULL,1,1,NULL,NULL)`
	_, _, err := ParsePage([]byte(in), 0)
	if err == nil {
		t.Fatal("expected a parse failure")
	}
	msg := err.Error()
	if !containsAll(msg, "namespace") {
		t.Errorf("error message %q does not mention the offending field", msg)
	}
}

func containsAll(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if !contains(s, sub) {
			return false
		}
	}
	return true
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
