package mwsql

// Page represents a row of the page table.
type Page struct {
	Id           PageId
	Namespace    PageNamespace
	Title        PageTitle
	Restrictions Optional[PageRestrictionsOld]
	IsRedirect   bool
	IsNew        bool
	Random       NonNaNFloat64
	Touched      Timestamp
	LinksUpdated Optional[Timestamp]
	Latest       uint32
	Len          uint32
	ContentModel Optional[ContentModel]
	Lang         Optional[string]
}

// ParsePage parses one tuple of the page table's INSERT statement.
func ParsePage(buf []byte, pos int) (int, Page, *ParseError) {
	return parseRowTuple(buf, pos, "row of page table", func(buf []byte, pos int) (int, Page, *ParseError) {
		var r Page
		var err *ParseError
		pos, r.Id, err = field(buf, pos, "the field “id”", ParsePageId)
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
		pos, r.Restrictions, err = field(buf, pos, "the field “restrictions”", func(b []byte, p int) (int, Optional[PageRestrictionsOld], *ParseError) {
			return ParseOptional(b, p, ParsePageRestrictionsOld)
		})
		if err != nil {
			return pos, r, err
		}
		pos, r.IsRedirect, err = field(buf, pos, "the field “is_redirect”", ParseBool)
		if err != nil {
			return pos, r, err
		}
		pos, r.IsNew, err = field(buf, pos, "the field “is_new”", ParseBool)
		if err != nil {
			return pos, r, err
		}
		pos, r.Random, err = field(buf, pos, "the field “random”", ParseNonNaNFloat64)
		if err != nil {
			return pos, r, err
		}
		pos, r.Touched, err = field(buf, pos, "the field “touched”", ParseTimestamp)
		if err != nil {
			return pos, r, err
		}
		pos, r.LinksUpdated, err = field(buf, pos, "the field “links_updated”", func(b []byte, p int) (int, Optional[Timestamp], *ParseError) {
			return ParseOptional(b, p, ParseTimestamp)
		})
		if err != nil {
			return pos, r, err
		}
		pos, r.Latest, err = field(buf, pos, "the field “latest”", ParseUint32)
		if err != nil {
			return pos, r, err
		}
		pos, r.Len, err = field(buf, pos, "the field “len”", ParseUint32)
		if err != nil {
			return pos, r, err
		}
		pos, r.ContentModel, err = field(buf, pos, "the field “content_model”", func(b []byte, p int) (int, Optional[ContentModel], *ParseError) {
			return ParseOptional(b, p, ParseContentModel)
		})
		if err != nil {
			return pos, r, err
		}
		pos, r.Lang, err = lastField(buf, pos, "the field “lang”", func(b []byte, p int) (int, Optional[string], *ParseError) {
			return ParseOptional(b, p, ParseRawString)
		})
		if err != nil {
			return pos, r, err
		}
		return pos, r, nil
	})
}

// PageLink represents a row of the pagelinks table.
type PageLink struct {
	From          PageId
	Namespace     PageNamespace
	Title         PageTitle
	FromNamespace PageNamespace
}

// ParsePageLink parses one tuple of the pagelinks table's INSERT statement.
func ParsePageLink(buf []byte, pos int) (int, PageLink, *ParseError) {
	return parseRowTuple(buf, pos, "row of pagelinks table", func(buf []byte, pos int) (int, PageLink, *ParseError) {
		var r PageLink
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
		pos, r.FromNamespace, err = lastField(buf, pos, "the field “from_namespace”", ParsePageNamespace)
		if err != nil {
			return pos, r, err
		}
		return pos, r, nil
	})
}

// PageProperty represents a row of the page_props table.
type PageProperty struct {
	Page    PageId
	Name    string
	Value   []byte
	SortKey Optional[NonNaNFloat64]
}

// ParsePageProperty parses one tuple of the page_props table's INSERT statement.
func ParsePageProperty(buf []byte, pos int) (int, PageProperty, *ParseError) {
	return parseRowTuple(buf, pos, "row of page_props table", func(buf []byte, pos int) (int, PageProperty, *ParseError) {
		var r PageProperty
		var err *ParseError
		pos, r.Page, err = field(buf, pos, "the field “page”", ParsePageId)
		if err != nil {
			return pos, r, err
		}
		pos, r.Name, err = field(buf, pos, "the field “name”", ParseRawString)
		if err != nil {
			return pos, r, err
		}
		pos, r.Value, err = field(buf, pos, "the field “value”", ParseEscapedBytes)
		if err != nil {
			return pos, r, err
		}
		pos, r.SortKey, err = lastField(buf, pos, "the field “sortkey”", func(b []byte, p int) (int, Optional[NonNaNFloat64], *ParseError) {
			return ParseOptional(b, p, ParseNonNaNFloat64)
		})
		if err != nil {
			return pos, r, err
		}
		return pos, r, nil
	})
}

// PageRestriction represents a row of the page_restrictions table.
type PageRestriction struct {
	Id      PageRestrictionId
	Page    PageId
	Type    PageAction
	Level   ProtectionLevel
	Cascade bool
	User    Optional[uint32]
	Expiry  Optional[Expiry]
}

// ParsePageRestriction parses one tuple of the page_restrictions table's
// INSERT statement.
func ParsePageRestriction(buf []byte, pos int) (int, PageRestriction, *ParseError) {
	return parseRowTuple(buf, pos, "row of page_restrictions table", func(buf []byte, pos int) (int, PageRestriction, *ParseError) {
		var r PageRestriction
		var err *ParseError
		pos, r.Id, err = field(buf, pos, "the field “id”", ParsePageRestrictionId)
		if err != nil {
			return pos, r, err
		}
		pos, r.Page, err = field(buf, pos, "the field “page”", ParsePageId)
		if err != nil {
			return pos, r, err
		}
		pos, r.Type, err = field(buf, pos, "the field “type”", ParsePageAction)
		if err != nil {
			return pos, r, err
		}
		pos, r.Level, err = field(buf, pos, "the field “level”", ParseProtectionLevel)
		if err != nil {
			return pos, r, err
		}
		pos, r.Cascade, err = field(buf, pos, "the field “cascade”", ParseBool)
		if err != nil {
			return pos, r, err
		}
		pos, r.User, err = field(buf, pos, "the field “user”", func(b []byte, p int) (int, Optional[uint32], *ParseError) {
			return ParseOptional(b, p, ParseUint32)
		})
		if err != nil {
			return pos, r, err
		}
		pos, r.Expiry, err = lastField(buf, pos, "the field “expiry”", func(b []byte, p int) (int, Optional[Expiry], *ParseError) {
			return ParseOptional(b, p, ParseExpiry)
		})
		if err != nil {
			return pos, r, err
		}
		return pos, r, nil
	})
}

// ProtectedTitle represents a row of the protected_titles table.
type ProtectedTitle struct {
	Namespace  PageNamespace
	Title      PageTitle
	User       UserId
	ReasonId   CommentId
	Timestamp  Timestamp
	Expiry     Expiry
	CreatePerm ProtectionLevel
}

// ParseProtectedTitle parses one tuple of the protected_titles table's
// INSERT statement.
func ParseProtectedTitle(buf []byte, pos int) (int, ProtectedTitle, *ParseError) {
	return parseRowTuple(buf, pos, "row of protected_titles table", func(buf []byte, pos int) (int, ProtectedTitle, *ParseError) {
		var r ProtectedTitle
		var err *ParseError
		pos, r.Namespace, err = field(buf, pos, "the field “namespace”", ParsePageNamespace)
		if err != nil {
			return pos, r, err
		}
		pos, r.Title, err = field(buf, pos, "the field “title”", ParsePageTitle)
		if err != nil {
			return pos, r, err
		}
		pos, r.User, err = field(buf, pos, "the field “user”", ParseUserId)
		if err != nil {
			return pos, r, err
		}
		pos, r.ReasonId, err = field(buf, pos, "the field “reason_id”", ParseCommentId)
		if err != nil {
			return pos, r, err
		}
		pos, r.Timestamp, err = field(buf, pos, "the field “timestamp”", ParseTimestamp)
		if err != nil {
			return pos, r, err
		}
		pos, r.Expiry, err = field(buf, pos, "the field “expiry”", ParseExpiry)
		if err != nil {
			return pos, r, err
		}
		pos, r.CreatePerm, err = lastField(buf, pos, "the field “create_perm”", ParseProtectionLevel)
		if err != nil {
			return pos, r, err
		}
		return pos, r, nil
	})
}

// Redirect represents a row of the redirect table.
type Redirect struct {
	From      PageId
	Namespace PageNamespace
	Title     PageTitle
	Interwiki Optional[string]
	Fragment  Optional[string]
}

// ParseRedirect parses one tuple of the redirect table's INSERT statement.
func ParseRedirect(buf []byte, pos int) (int, Redirect, *ParseError) {
	return parseRowTuple(buf, pos, "row of redirect table", func(buf []byte, pos int) (int, Redirect, *ParseError) {
		var r Redirect
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
		pos, r.Interwiki, err = field(buf, pos, "the field “interwiki”", func(b []byte, p int) (int, Optional[string], *ParseError) {
			return ParseOptional(b, p, ParseRawString)
		})
		if err != nil {
			return pos, r, err
		}
		pos, r.Fragment, err = lastField(buf, pos, "the field “fragment”", func(b []byte, p int) (int, Optional[string], *ParseError) {
			return ParseOptional(b, p, ParseUTF8String)
		})
		if err != nil {
			return pos, r, err
		}
		return pos, r, nil
	})
}
