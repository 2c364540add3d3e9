package mwsql

import "testing"

func TestPageRestrictionsOldGrammar(t *testing.T) {
	cases := []struct {
		in   string
		want map[PageAction][]ProtectionLevel
	}{
		{
			in: "'edit=autoconfirmed:move=sysop'",
			want: map[PageAction][]ProtectionLevel{
				NewPageAction(PageActionEdit): {NewProtectionLevel(ProtectionLevelAutoconfirmed)},
				NewPageAction(PageActionMove): {NewProtectionLevel(ProtectionLevelSysop)},
			},
		},
		{
			in:   "''",
			want: map[PageAction][]ProtectionLevel{},
		},
		{
			in: "'sysop'",
			want: map[PageAction][]ProtectionLevel{
				NewPageAction(PageActionAll): {NewProtectionLevel(ProtectionLevelSysop)},
			},
		},
		{
			in: "'move=:edit='",
			want: map[PageAction][]ProtectionLevel{
				NewPageAction(PageActionMove): {NewProtectionLevel(ProtectionLevelNone)},
				NewPageAction(PageActionEdit): {NewProtectionLevel(ProtectionLevelNone)},
			},
		},
	}
	for _, c := range cases {
		_, got, err := ParsePageRestrictionsOld([]byte(c.in), 0)
		if err != nil {
			t.Errorf("ParsePageRestrictionsOld(%s): %v", c.in, err)
			continue
		}
		if len(got) != len(c.want) {
			t.Errorf("ParsePageRestrictionsOld(%s) = %+v, want %+v", c.in, got, c.want)
			continue
		}
		for action, levels := range c.want {
			gotLevels, ok := got[action]
			if !ok || len(gotLevels) != len(levels) {
				t.Errorf("ParsePageRestrictionsOld(%s): action %v = %v, want %v", c.in, action, gotLevels, levels)
				continue
			}
			for i := range levels {
				if gotLevels[i] != levels[i] {
					t.Errorf("ParsePageRestrictionsOld(%s): action %v level %d = %v, want %v", c.in, action, i, gotLevels[i], levels[i])
				}
			}
		}
	}
}

func TestPageRestrictionsOldIsRawNotEscaped(t *testing.T) {
	// A backslash must pass through literally: raw parsing, not the
	// escaped-string grammar.
	_, got, err := ParsePageRestrictionsOld([]byte(`'edit=\sysop'`), 0)
	if err != nil {
		t.Fatal(err)
	}
	levels, ok := got[NewPageAction(PageActionEdit)]
	if !ok || len(levels) != 1 {
		t.Fatalf("got %+v", got)
	}
	if other, _ := levels[0].Other(); other != `\sysop` {
		t.Errorf("level = %q, want literal backslash preserved", other)
	}
}
