package main

import (
	"encoding/json"

	"golang.org/x/text/cases"

	"github.com/brawer/mwsql/mwsql"
)

// tableCaser case-folds a user-supplied --table value to match the
// lowercase registry keys, so "--table Page" and "--table page" both
// resolve. Only case is changed; underscores must be given as-is. MediaWiki table
// names are plain ASCII, so a single shared Caser is enough.
var tableCaser = cases.Fold()

// tableDumper knows how to stream one MediaWiki table's rows out of a
// dump buffer as JSON Lines.
type tableDumper func(buf []byte, emit func([]byte) error) error

func dumpTable[R any](buf []byte, parseRow func([]byte, int) (int, R, *mwsql.ParseError), emit func([]byte) error) error {
	it := mwsql.Iterate(buf, parseRow)
	for it.Next() {
		line, err := json.Marshal(it.Row())
		if err != nil {
			return err
		}
		if err := emit(line); err != nil {
			return err
		}
	}
	if err := it.Err(); err != nil {
		return err
	}
	return nil
}

// tableDumpers maps a MediaWiki table name (as it appears in
// `INSERT INTO `name` VALUES`) to the dumper for its row schema.
var tableDumpers = map[string]tableDumper{
	"babel": func(buf []byte, emit func([]byte) error) error {
		return dumpTable(buf, mwsql.ParseBabel, emit)
	},
	"category": func(buf []byte, emit func([]byte) error) error {
		return dumpTable(buf, mwsql.ParseCategory, emit)
	},
	"categorylinks": func(buf []byte, emit func([]byte) error) error {
		return dumpTable(buf, mwsql.ParseCategoryLink, emit)
	},
	"change_tag": func(buf []byte, emit func([]byte) error) error {
		return dumpTable(buf, mwsql.ParseChangeTag, emit)
	},
	"change_tag_def": func(buf []byte, emit func([]byte) error) error {
		return dumpTable(buf, mwsql.ParseChangeTagDefinition, emit)
	},
	"externallinks": func(buf []byte, emit func([]byte) error) error {
		return dumpTable(buf, mwsql.ParseExternalLink, emit)
	},
	"image": func(buf []byte, emit func([]byte) error) error {
		return dumpTable(buf, mwsql.ParseImage, emit)
	},
	"imagelinks": func(buf []byte, emit func([]byte) error) error {
		return dumpTable(buf, mwsql.ParseImageLink, emit)
	},
	"iwlinks": func(buf []byte, emit func([]byte) error) error {
		return dumpTable(buf, mwsql.ParseInterwikiLink, emit)
	},
	"langlinks": func(buf []byte, emit func([]byte) error) error {
		return dumpTable(buf, mwsql.ParseLanguageLink, emit)
	},
	"page": func(buf []byte, emit func([]byte) error) error {
		return dumpTable(buf, mwsql.ParsePage, emit)
	},
	"pagelinks": func(buf []byte, emit func([]byte) error) error {
		return dumpTable(buf, mwsql.ParsePageLink, emit)
	},
	"page_props": func(buf []byte, emit func([]byte) error) error {
		return dumpTable(buf, mwsql.ParsePageProperty, emit)
	},
	"page_restrictions": func(buf []byte, emit func([]byte) error) error {
		return dumpTable(buf, mwsql.ParsePageRestriction, emit)
	},
	"protected_titles": func(buf []byte, emit func([]byte) error) error {
		return dumpTable(buf, mwsql.ParseProtectedTitle, emit)
	},
	"redirect": func(buf []byte, emit func([]byte) error) error {
		return dumpTable(buf, mwsql.ParseRedirect, emit)
	},
	"sites": func(buf []byte, emit func([]byte) error) error {
		return dumpTable(buf, mwsql.ParseSite, emit)
	},
	"site_stats": func(buf []byte, emit func([]byte) error) error {
		return dumpTable(buf, mwsql.ParseSiteStats, emit)
	},
	"templatelinks": func(buf []byte, emit func([]byte) error) error {
		return dumpTable(buf, mwsql.ParseTemplateLink, emit)
	},
	"user_former_groups": func(buf []byte, emit func([]byte) error) error {
		return dumpTable(buf, mwsql.ParseUserFormerGroupMembership, emit)
	},
	"user_groups": func(buf []byte, emit func([]byte) error) error {
		return dumpTable(buf, mwsql.ParseUserGroupMembership, emit)
	},
	"wbc_entity_usage": func(buf []byte, emit func([]byte) error) error {
		return dumpTable(buf, mwsql.ParseWikibaseClientEntityUsage, emit)
	},
}

func tableNames() []string {
	names := make([]string, 0, len(tableDumpers))
	for name := range tableDumpers {
		names = append(names, name)
	}
	return names
}

// lookupTable resolves name to its dumper case-insensitively, so
// "--table Page" works the same as "--table page".
func lookupTable(name string) (tableDumper, bool) {
	d, ok := tableDumpers[tableCaser.String(name)]
	return d, ok
}
