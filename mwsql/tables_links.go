package mwsql

// CategoryLink represents a row of the categorylinks table.
type CategoryLink struct {
	From          PageId
	To            PageTitle
	SortKey       []byte
	Timestamp     Timestamp
	SortKeyPrefix []byte
	Collation     string
	Type          PageType
}

// ParseCategoryLink parses one tuple of the categorylinks table's
// INSERT statement.
func ParseCategoryLink(buf []byte, pos int) (int, CategoryLink, *ParseError) {
	return parseRowTuple(buf, pos, "row of categorylinks table", func(buf []byte, pos int) (int, CategoryLink, *ParseError) {
		var r CategoryLink
		var err *ParseError
		pos, r.From, err = field(buf, pos, "the field “from”", ParsePageId)
		if err != nil {
			return pos, r, err
		}
		pos, r.To, err = field(buf, pos, "the field “to”", ParsePageTitle)
		if err != nil {
			return pos, r, err
		}
		pos, r.SortKey, err = field(buf, pos, "the field “sortkey”", ParseRawBytes)
		if err != nil {
			return pos, r, err
		}
		pos, r.Timestamp, err = field(buf, pos, "the field “timestamp”", ParseTimestamp)
		if err != nil {
			return pos, r, err
		}
		pos, r.SortKeyPrefix, err = field(buf, pos, "the field “sortkey_prefix”", ParseEscapedBytes)
		if err != nil {
			return pos, r, err
		}
		pos, r.Collation, err = field(buf, pos, "the field “collation”", ParseUTF8String)
		if err != nil {
			return pos, r, err
		}
		pos, r.Type, err = lastField(buf, pos, "the field “type”", ParsePageType)
		if err != nil {
			return pos, r, err
		}
		return pos, r, nil
	})
}

// ImageLink represents a row of the imagelinks table.
type ImageLink struct {
	From          PageId
	To            PageTitle
	FromNamespace PageNamespace
}

// ParseImageLink parses one tuple of the imagelinks table's INSERT statement.
func ParseImageLink(buf []byte, pos int) (int, ImageLink, *ParseError) {
	return parseRowTuple(buf, pos, "row of imagelinks table", func(buf []byte, pos int) (int, ImageLink, *ParseError) {
		var r ImageLink
		var err *ParseError
		pos, r.From, err = field(buf, pos, "the field “from”", ParsePageId)
		if err != nil {
			return pos, r, err
		}
		pos, r.To, err = field(buf, pos, "the field “to”", ParsePageTitle)
		if err != nil {
			return pos, r, err
		}
		pos, r.FromNamespace, err = lastField(buf, pos, "the field “from_namespace”", ParsePageNamespace)
		if err != nil {
			return pos, r, err
		}
		return pos, r, nil
	})
}

// InterwikiLink represents a row of the iwlinks table.
type InterwikiLink struct {
	From   PageId
	Prefix string
	Title  PageTitle
}

// ParseInterwikiLink parses one tuple of the iwlinks table's INSERT statement.
func ParseInterwikiLink(buf []byte, pos int) (int, InterwikiLink, *ParseError) {
	return parseRowTuple(buf, pos, "row of iwlinks table", func(buf []byte, pos int) (int, InterwikiLink, *ParseError) {
		var r InterwikiLink
		var err *ParseError
		pos, r.From, err = field(buf, pos, "the field “from”", ParsePageId)
		if err != nil {
			return pos, r, err
		}
		pos, r.Prefix, err = field(buf, pos, "the field “prefix”", ParseRawString)
		if err != nil {
			return pos, r, err
		}
		pos, r.Title, err = lastField(buf, pos, "the field “title”", ParsePageTitle)
		if err != nil {
			return pos, r, err
		}
		return pos, r, nil
	})
}

// LanguageLink represents a row of the langlinks table.
type LanguageLink struct {
	From  PageId
	Lang  string
	Title FullPageTitle
}

// ParseLanguageLink parses one tuple of the langlinks table's INSERT statement.
func ParseLanguageLink(buf []byte, pos int) (int, LanguageLink, *ParseError) {
	return parseRowTuple(buf, pos, "row of langlinks table", func(buf []byte, pos int) (int, LanguageLink, *ParseError) {
		var r LanguageLink
		var err *ParseError
		pos, r.From, err = field(buf, pos, "the field “from”", ParsePageId)
		if err != nil {
			return pos, r, err
		}
		pos, r.Lang, err = field(buf, pos, "the field “lang”", ParseRawString)
		if err != nil {
			return pos, r, err
		}
		pos, r.Title, err = lastField(buf, pos, "the field “title”", ParseFullPageTitle)
		if err != nil {
			return pos, r, err
		}
		return pos, r, nil
	})
}

// TemplateLink represents a row of the templatelinks table.
type TemplateLink struct {
	From          PageId
	Namespace     PageNamespace
	Title         PageTitle
	FromNamespace PageNamespace
	TargetId      LinkTargetId
}

// ParseTemplateLink parses one tuple of the templatelinks table's
// INSERT statement.
func ParseTemplateLink(buf []byte, pos int) (int, TemplateLink, *ParseError) {
	return parseRowTuple(buf, pos, "row of templatelinks table", func(buf []byte, pos int) (int, TemplateLink, *ParseError) {
		var r TemplateLink
		var err *ParseError
		pos, r.From, err = field(buf, pos, "the field “from”", ParsePageId)
		if err != nil {
			return pos, r, err
		}
		pos, r.Namespace, err = field(buf, pos, "the field “namespace”", ParsePageNamespace)
		if err != nil {
			return pos, r, err
		}
		pos, r.Title, err = field(buf, pos, "the field “title”", ParsePageTitle)
		if err != nil {
			return pos, r, err
		}
		pos, r.FromNamespace, err = field(buf, pos, "the field “from_namespace”", ParsePageNamespace)
		if err != nil {
			return pos, r, err
		}
		pos, r.TargetId, err = lastField(buf, pos, "the field “target_id”", ParseLinkTargetId)
		if err != nil {
			return pos, r, err
		}
		return pos, r, nil
	})
}

// ExternalLink represents a row of the externallinks table.
type ExternalLink struct {
	Id       ExternalLinkId
	From     PageId
	To       string
	Index    []byte
	Index60  []byte
}

// ParseExternalLink parses one tuple of the externallinks table's
// INSERT statement.
func ParseExternalLink(buf []byte, pos int) (int, ExternalLink, *ParseError) {
	return parseRowTuple(buf, pos, "row of externallinks table", func(buf []byte, pos int) (int, ExternalLink, *ParseError) {
		var r ExternalLink
		var err *ParseError
		pos, r.Id, err = field(buf, pos, "the field “id”", ParseExternalLinkId)
		if err != nil {
			return pos, r, err
		}
		pos, r.From, err = field(buf, pos, "the field “from”", ParsePageId)
		if err != nil {
			return pos, r, err
		}
		pos, r.To, err = field(buf, pos, "the field “to”", ParseUTF8String)
		if err != nil {
			return pos, r, err
		}
		pos, r.Index, err = field(buf, pos, "the field “index”", ParseEscapedBytes)
		if err != nil {
			return pos, r, err
		}
		pos, r.Index60, err = lastField(buf, pos, "the field “index_60”", ParseEscapedBytes)
		if err != nil {
			return pos, r, err
		}
		return pos, r, nil
	})
}
