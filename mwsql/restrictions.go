package mwsql

import "strings"

// PageRestrictionsOld decodes page.page_restrictions, the legacy
// colon-and-comma mini-language MediaWiki used before the
// page_restrictions table existed. Grammar (see spec.md §6.2 and
// original_source/src/field_types.rs's page_restrictions parser):
//
//	restrictions := "" | level | entry (":" entry)*
//	entry        := action "=" level ("," level)*
//	level        := any run of bytes other than ':' ',' '='
//
// A bare level with no "action=" prefix applies to every action and is
// stored under the "all" PageAction (NewPageAction(PageActionAll)).
// Later entries for the same action overwrite earlier ones, matching
// the original's HashMap insert semantics.
type PageRestrictionsOld map[PageAction][]ProtectionLevel

// ParsePageRestrictionsOld parses the raw string stored in
// page.page_restrictions.
func ParsePageRestrictionsOld(buf []byte, pos int) (int, PageRestrictionsOld, *ParseError) {
	const label = "page restrictions"
	end, s, err := ParseRawString(buf, pos)
	if err != nil {
		return end, nil, withContext(err, pos, label)
	}
	return end, decodePageRestrictionsOld(s), nil
}

func decodePageRestrictionsOld(s string) PageRestrictionsOld {
	result := make(PageRestrictionsOld)
	if s == "" {
		return result
	}
	for _, entry := range strings.Split(s, ":") {
		if entry == "" {
			continue
		}
		eq := strings.LastIndexByte(entry, '=')
		var action PageAction
		var levelsStr string
		if eq < 0 {
			action = NewPageAction(PageActionAll)
			levelsStr = entry
		} else {
			action = parsePageActionStr(entry[:eq])
			levelsStr = entry[eq+1:]
		}
		levels := make([]ProtectionLevel, 0, 1)
		for _, lvl := range strings.Split(levelsStr, ",") {
			levels = append(levels, parseProtectionLevelStr(lvl))
		}
		result[action] = levels
	}
	return result
}
