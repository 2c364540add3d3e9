// Package namespace renders mwsql.PageTitle/PageNamespace pairs as the
// human-readable titles MediaWiki itself would display, and loads the
// namespace name table from a site's siteinfo-namespaces.json (the
// payload of api.php?action=query&meta=siteinfo&siprop=namespaces).
//
// This is external to the core parser on purpose: mwsql.Page only ever
// hands back the raw namespace number, never a name, because that
// mapping is per-wiki configuration, not part of the SQL dump grammar.
package namespace

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/brawer/mwsql/mwsql"
)

// Map associates MediaWiki namespace numbers with their display names
// for one wiki.
type Map struct {
	names map[mwsql.PageNamespace]string
}

type siteinfoResponse struct {
	Query struct {
		Namespaces map[string]namespaceInfo `json:"namespaces"`
	} `json:"query"`
}

type namespaceInfo struct {
	Id   int32  `json:"id"`
	Name string `json:"*"`
}

// Load reads a namespace map from path, a siteinfo-namespaces.json
// file as returned by MediaWiki's API, transparently gunzipping when
// path ends in ".gz".
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decompressing %s: %w", path, err)
		}
		defer gz.Close()
		data, err = io.ReadAll(gz)
		if err != nil {
			return nil, fmt.Errorf("decompressing %s: %w", path, err)
		}
	}
	return Parse(data)
}

// Parse decodes a siteinfo-namespaces.json payload already held in
// memory.
func Parse(data []byte) (*Map, error) {
	var resp siteinfoResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing namespace JSON: %w", err)
	}
	m := &Map{names: make(map[mwsql.PageNamespace]string, len(resp.Query.Namespaces))}
	for _, info := range resp.Query.Namespaces {
		m.names[mwsql.PageNamespace(info.Id)] = info.Name
	}
	return m, nil
}

// Name returns the display name of ns ("", "Talk", "User", ...) and
// whether ns is known to this map.
func (m *Map) Name(ns mwsql.PageNamespace) (string, bool) {
	name, ok := m.names[ns]
	return name, ok
}

// ReadableTitle renders title (underscores for spaces, no namespace
// prefix) together with ns as the form MediaWiki itself displays:
// namespace name, a colon if the namespace name is non-empty, then the
// title with underscores turned back into spaces. Returns false if ns
// is not present in the map.
func (m *Map) ReadableTitle(title mwsql.PageTitle, ns mwsql.PageNamespace) (string, bool) {
	name, ok := m.names[ns]
	if !ok {
		return "", false
	}
	var b strings.Builder
	if name != "" {
		b.WriteString(name)
		b.WriteByte(':')
	}
	var it norm.Iter
	it.InitString(norm.NFC, string(title))
	for !it.Done() {
		c := it.Next()
		if c[0] == '_' {
			b.WriteByte(' ')
		} else {
			b.Write(c)
		}
	}
	return b.String(), true
}
