package mwsql

// Category represents a row of the category table.
type Category struct {
	Id      CategoryId
	Title   PageTitle
	Pages   PageCount
	Subcats PageCount
	Files   PageCount
}

// ParseCategory parses one tuple of the category table's INSERT statement.
func ParseCategory(buf []byte, pos int) (int, Category, *ParseError) {
	return parseRowTuple(buf, pos, "row of category table", func(buf []byte, pos int) (int, Category, *ParseError) {
		var r Category
		var err *ParseError
		pos, r.Id, err = field(buf, pos, "the field “id”", ParseCategoryId)
		if err != nil {
			return pos, r, err
		}
		pos, r.Title, err = field(buf, pos, "the field “title”", ParsePageTitle)
		if err != nil {
			return pos, r, err
		}
		pos, r.Pages, err = field(buf, pos, "the field “pages”", ParsePageCount)
		if err != nil {
			return pos, r, err
		}
		pos, r.Subcats, err = field(buf, pos, "the field “subcats”", ParsePageCount)
		if err != nil {
			return pos, r, err
		}
		pos, r.Files, err = lastField(buf, pos, "the field “files”", ParsePageCount)
		if err != nil {
			return pos, r, err
		}
		return pos, r, nil
	})
}

// Image represents a row of the image table.
type Image struct {
	Name          PageTitle
	Size          uint32
	Width         int32
	Height        int32
	Metadata      string
	Bits          int32
	MediaType     MediaType
	MajorMime     MajorMime
	MinorMime     MinorMime
	DescriptionId CommentId
	Actor         ActorId
	Timestamp     Timestamp
	Sha1          Sha1
}

// ParseImage parses one tuple of the image table's INSERT statement.
func ParseImage(buf []byte, pos int) (int, Image, *ParseError) {
	return parseRowTuple(buf, pos, "row of image table", func(buf []byte, pos int) (int, Image, *ParseError) {
		var r Image
		var err *ParseError
		pos, r.Name, err = field(buf, pos, "the field “name”", ParsePageTitle)
		if err != nil {
			return pos, r, err
		}
		pos, r.Size, err = field(buf, pos, "the field “size”", ParseUint32)
		if err != nil {
			return pos, r, err
		}
		pos, r.Width, err = field(buf, pos, "the field “width”", ParseInt32)
		if err != nil {
			return pos, r, err
		}
		pos, r.Height, err = field(buf, pos, "the field “height”", ParseInt32)
		if err != nil {
			return pos, r, err
		}
		pos, r.Metadata, err = field(buf, pos, "the field “metadata”", ParseUTF8String)
		if err != nil {
			return pos, r, err
		}
		pos, r.Bits, err = field(buf, pos, "the field “bits”", ParseInt32)
		if err != nil {
			return pos, r, err
		}
		pos, r.MediaType, err = field(buf, pos, "the field “media_type”", ParseMediaType)
		if err != nil {
			return pos, r, err
		}
		pos, r.MajorMime, err = field(buf, pos, "the field “major_mime”", ParseMajorMime)
		if err != nil {
			return pos, r, err
		}
		pos, r.MinorMime, err = field(buf, pos, "the field “minor_mime”", ParseMinorMime)
		if err != nil {
			return pos, r, err
		}
		pos, r.DescriptionId, err = field(buf, pos, "the field “description_id”", ParseCommentId)
		if err != nil {
			return pos, r, err
		}
		pos, r.Actor, err = field(buf, pos, "the field “actor”", ParseActorId)
		if err != nil {
			return pos, r, err
		}
		pos, r.Timestamp, err = field(buf, pos, "the field “timestamp”", ParseTimestamp)
		if err != nil {
			return pos, r, err
		}
		pos, r.Sha1, err = lastField(buf, pos, "the field “sha1”", ParseSha1)
		if err != nil {
			return pos, r, err
		}
		return pos, r, nil
	})
}

// Site represents a row of the sites table.
type Site struct {
	Id        uint32
	GlobalKey string
	Type      string
	Group     string
	Source    string
	Language  string
	Protocol  string
	Domain    []byte
	Data      string
	Forward   int8
	Config    string
}

// ParseSite parses one tuple of the sites table's INSERT statement.
func ParseSite(buf []byte, pos int) (int, Site, *ParseError) {
	return parseRowTuple(buf, pos, "row of sites table", func(buf []byte, pos int) (int, Site, *ParseError) {
		var r Site
		var err *ParseError
		pos, r.Id, err = field(buf, pos, "the field “id”", ParseUint32)
		if err != nil {
			return pos, r, err
		}
		pos, r.GlobalKey, err = field(buf, pos, "the field “global_key”", ParseRawString)
		if err != nil {
			return pos, r, err
		}
		pos, r.Type, err = field(buf, pos, "the field “type”", ParseRawString)
		if err != nil {
			return pos, r, err
		}
		pos, r.Group, err = field(buf, pos, "the field “group”", ParseRawString)
		if err != nil {
			return pos, r, err
		}
		pos, r.Source, err = field(buf, pos, "the field “source”", ParseRawString)
		if err != nil {
			return pos, r, err
		}
		pos, r.Language, err = field(buf, pos, "the field “language”", ParseRawString)
		if err != nil {
			return pos, r, err
		}
		pos, r.Protocol, err = field(buf, pos, "the field “protocol”", ParseRawString)
		if err != nil {
			return pos, r, err
		}
		pos, r.Domain, err = field(buf, pos, "the field “domain”", ParseRawBytes)
		if err != nil {
			return pos, r, err
		}
		pos, r.Data, err = field(buf, pos, "the field “data”", ParseUTF8String)
		if err != nil {
			return pos, r, err
		}
		pos, r.Forward, err = field(buf, pos, "the field “forward”", ParseInt8)
		if err != nil {
			return pos, r, err
		}
		pos, r.Config, err = lastField(buf, pos, "the field “config”", ParseUTF8String)
		if err != nil {
			return pos, r, err
		}
		return pos, r, nil
	})
}

// SiteStats represents a row of the site_stats table. MediaWiki keeps
// exactly one row in this table, but the grammar has no way of knowing
// that, so it is parsed the same as any other row type.
type SiteStats struct {
	RowId        uint32
	TotalEdits   uint64
	GoodArticles uint64
	TotalPages   uint64
	Users        uint64
	Images       uint64
	ActiveUsers  uint64
}

// ParseSiteStats parses one tuple of the site_stats table's INSERT
// statement.
func ParseSiteStats(buf []byte, pos int) (int, SiteStats, *ParseError) {
	return parseRowTuple(buf, pos, "row of site_stats table", func(buf []byte, pos int) (int, SiteStats, *ParseError) {
		var r SiteStats
		var err *ParseError
		pos, r.RowId, err = field(buf, pos, "the field “row_id”", ParseUint32)
		if err != nil {
			return pos, r, err
		}
		pos, r.TotalEdits, err = field(buf, pos, "the field “total_edits”", ParseUint64)
		if err != nil {
			return pos, r, err
		}
		pos, r.GoodArticles, err = field(buf, pos, "the field “good_articles”", ParseUint64)
		if err != nil {
			return pos, r, err
		}
		pos, r.TotalPages, err = field(buf, pos, "the field “total_pages”", ParseUint64)
		if err != nil {
			return pos, r, err
		}
		pos, r.Users, err = field(buf, pos, "the field “users”", ParseUint64)
		if err != nil {
			return pos, r, err
		}
		pos, r.Images, err = field(buf, pos, "the field “images”", ParseUint64)
		if err != nil {
			return pos, r, err
		}
		pos, r.ActiveUsers, err = lastField(buf, pos, "the field “active_users”", ParseUint64)
		if err != nil {
			return pos, r, err
		}
		return pos, r, nil
	})
}
